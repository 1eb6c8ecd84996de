package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// ImportResult counts what an import did.
type ImportResult struct {
	CheckInsAdded int `json:"checkins_added"`
	JournalAdded  int `json:"journal_added"`
	Skipped       int `json:"skipped"`
	Invalid       int `json:"invalid"`
	Streak        int `json:"streak"`
}

// Export writes every stored record to w as an indented Document.
func Export(ctx context.Context, st tracker.Store, w io.Writer, now time.Time) error {
	checkins, err := st.ReadAllCheckIns(ctx)
	if err != nil {
		return fmt.Errorf("reading check-ins: %w", err)
	}
	entries, err := st.ReadAllJournalEntries(ctx)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	streak, err := st.ReadStreak(ctx)
	if err != nil {
		return fmt.Errorf("reading streak: %w", err)
	}

	doc := Document{
		CheckIns:   checkins,
		Journal:    make([]journalEntry, len(entries)),
		Streak:     strconv.Itoa(streak),
		ExportedAt: &now,
	}
	for i, e := range entries {
		res := e.Sentiment
		doc.Journal[i] = journalEntry{
			ID: e.ID, Date: e.Date, Text: e.Text, Sentiment: &res, Timestamp: e.Timestamp,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Import merges the Document read from r into st. Records whose ID is
// already stored are skipped, so importing the same file twice is
// harmless. Records that fail validation are skipped with a warning.
// Imported dates are moved into now's location: the browser app stored UTC,
// and weekday and timeline views read the stored offset. The streak is
// recomputed from the merged history as of now.
func Import(ctx context.Context, st tracker.Store, r io.Reader, now time.Time) (ImportResult, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ImportResult{}, fmt.Errorf("decoding backup: %w", err)
	}

	var res ImportResult
	loc := now.Location()

	existing, err := st.ReadAllCheckIns(ctx)
	if err != nil {
		return res, fmt.Errorf("reading check-ins: %w", err)
	}
	seen := make(map[int64]bool, len(existing))
	for _, c := range existing {
		seen[c.ID] = true
	}

	incoming := doc.CheckIns
	sort.SliceStable(incoming, func(i, j int) bool { return incoming[i].Timestamp < incoming[j].Timestamp })
	for _, c := range incoming {
		if seen[c.ID] {
			res.Skipped++
			continue
		}
		if c.Mood < record.MinMood || c.Mood > record.MaxMood || c.Date.IsZero() {
			log.Printf("Warning: skipping imported check-in %d with mood %d", c.ID, c.Mood)
			res.Invalid++
			continue
		}
		c.Date = c.Date.In(loc)
		c.Activities = record.NormalizeActivities(c.Activities)
		c.Notes = strings.TrimSpace(c.Notes)
		if c.Timestamp == 0 {
			c.Timestamp = c.Date.UnixMilli()
		}
		if err := st.AppendCheckIn(ctx, c); err != nil {
			return res, fmt.Errorf("importing check-in %d: %w", c.ID, err)
		}
		seen[c.ID] = true
		res.CheckInsAdded++
	}

	stored, err := st.ReadAllJournalEntries(ctx)
	if err != nil {
		return res, fmt.Errorf("reading journal: %w", err)
	}
	seenJournal := make(map[int64]bool, len(stored))
	for _, e := range stored {
		seenJournal[e.ID] = true
	}

	for _, j := range doc.Journal {
		if seenJournal[j.ID] {
			res.Skipped++
			continue
		}
		j.Text = strings.TrimSpace(j.Text)
		if j.Text == "" || j.Date.IsZero() {
			log.Printf("Warning: skipping imported journal entry %d with no text or date", j.ID)
			res.Invalid++
			continue
		}
		entry := j.toRecord()
		entry.Date = entry.Date.In(loc)
		if entry.Timestamp == 0 {
			entry.Timestamp = entry.Date.UnixMilli()
		}
		if err := st.AppendJournalEntry(ctx, entry); err != nil {
			return res, fmt.Errorf("importing journal entry %d: %w", j.ID, err)
		}
		seenJournal[j.ID] = true
		res.JournalAdded++
	}

	history, err := st.ReadAllCheckIns(ctx)
	if err != nil {
		return res, fmt.Errorf("reading check-ins: %w", err)
	}
	res.Streak = analyzer.ComputeStreak(history, now)
	if err := st.WriteStreak(ctx, res.Streak); err != nil {
		return res, fmt.Errorf("saving streak: %w", err)
	}
	return res, nil
}
