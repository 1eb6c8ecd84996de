package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// streakKey is the meta key holding the cached streak.
const streakKey = "streak"

// dateLayout is how record dates are persisted. It keeps the UTC offset so
// the calendar day the user saw is recoverable.
const dateLayout = time.RFC3339Nano

// AppendCheckIn stores a new check-in.
func (db *DB) AppendCheckIn(ctx context.Context, c record.CheckIn) error {
	activities := c.Activities
	if activities == nil {
		activities = []string{}
	}
	actJSON, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO checkins (id, date, mood, activities, notes, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Date.Format(dateLayout), c.Mood, string(actJSON), c.Notes, c.Timestamp,
	)
	return err
}

// ReadAllCheckIns returns every check-in, oldest first. Rows that cannot be
// decoded are skipped with a warning.
func (db *DB) ReadAllCheckIns(ctx context.Context) ([]record.CheckIn, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, date, mood, activities, notes, timestamp
		 FROM checkins ORDER BY timestamp, id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	checkins := []record.CheckIn{}
	for rows.Next() {
		var c record.CheckIn
		var date, activities string
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &date, &c.Mood, &activities, &notes, &c.Timestamp); err != nil {
			return nil, err
		}

		if c.Mood < record.MinMood || c.Mood > record.MaxMood {
			log.Printf("Warning: skipping check-in %d with out-of-range mood %d", c.ID, c.Mood)
			continue
		}
		c.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			log.Printf("Warning: skipping check-in %d with unreadable date %q: %v", c.ID, date, err)
			continue
		}
		if err := json.Unmarshal([]byte(activities), &c.Activities); err != nil {
			log.Printf("Warning: skipping check-in %d with unreadable activities: %v", c.ID, err)
			continue
		}
		if c.Activities == nil {
			c.Activities = []string{}
		}
		c.Notes = notes.String
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// AppendJournalEntry stores a new journal entry with its frozen sentiment.
func (db *DB) AppendJournalEntry(ctx context.Context, j record.JournalEntry) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO journal_entries (id, date, text, sentiment_score, sentiment_label, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		j.ID, j.Date.Format(dateLayout), j.Text, j.Sentiment.Score, string(j.Sentiment.Label), j.Timestamp,
	)
	return err
}

// ReadAllJournalEntries returns every journal entry, oldest first. Rows
// that cannot be decoded are skipped with a warning.
func (db *DB) ReadAllJournalEntries(ctx context.Context) ([]record.JournalEntry, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, date, text, sentiment_score, sentiment_label, timestamp
		 FROM journal_entries ORDER BY timestamp, id`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := []record.JournalEntry{}
	for rows.Next() {
		var j record.JournalEntry
		var date, label string
		var score float64
		if err := rows.Scan(&j.ID, &date, &j.Text, &score, &label, &j.Timestamp); err != nil {
			return nil, err
		}

		j.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			log.Printf("Warning: skipping journal entry %d with unreadable date %q: %v", j.ID, date, err)
			continue
		}
		j.Sentiment = sentiment.FromStored(score, label)
		entries = append(entries, j)
	}
	return entries, rows.Err()
}

// ReadStreak returns the cached streak. A missing or unreadable value is 0.
func (db *DB) ReadStreak(ctx context.Context) (int, error) {
	var value string
	err := db.conn.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", streakKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("Warning: ignoring unreadable stored streak %q", value)
		return 0, nil
	}
	return n, nil
}

// WriteStreak replaces the cached streak.
func (db *DB) WriteStreak(ctx context.Context, streak int) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		streakKey, strconv.Itoa(streak),
	)
	return err
}
