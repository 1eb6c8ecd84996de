// Package backup moves history in and out of the store as a single JSON
// document. The layout matches the browser app's localStorage keys so an
// export from there can be imported directly:
//
//	{"mindwell_checkins": [...], "mindwell_journal": [...], "mindwell_streak": "3"}
//
// Each value may also be a JSON string holding the encoded value, which is
// how localStorage itself stores them.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// Document is the on-disk backup format.
type Document struct {
	CheckIns []record.CheckIn `json:"mindwell_checkins"`
	Journal  []journalEntry   `json:"mindwell_journal"`

	// Streak is informational; imports recompute it from the merged history.
	Streak string `json:"mindwell_streak"`

	ExportedAt *time.Time `json:"exported_at,omitempty"`
}

// journalEntry is a journal entry whose sentiment may be missing in older
// exports.
type journalEntry struct {
	ID        int64             `json:"id"`
	Date      time.Time         `json:"date"`
	Text      string            `json:"text"`
	Sentiment *sentiment.Result `json:"sentiment,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// toRecord converts the entry, scoring the text when no sentiment was stored.
func (j journalEntry) toRecord() record.JournalEntry {
	res := sentiment.Score(j.Text)
	if j.Sentiment != nil {
		res = sentiment.FromStored(j.Sentiment.Score, string(j.Sentiment.Label))
	}
	return record.JournalEntry{
		ID:        j.ID,
		Date:      j.Date,
		Text:      j.Text,
		Sentiment: res,
		Timestamp: j.Timestamp,
	}
}

// UnmarshalJSON accepts each top-level value either directly or wrapped in
// a JSON string.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := decodeField(raw["mindwell_checkins"], &d.CheckIns); err != nil {
		return fmt.Errorf("mindwell_checkins: %w", err)
	}
	if err := decodeField(raw["mindwell_journal"], &d.Journal); err != nil {
		return fmt.Errorf("mindwell_journal: %w", err)
	}

	if v := raw["mindwell_streak"]; len(v) > 0 && !bytes.Equal(v, []byte("null")) {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			var n int
			if err := json.Unmarshal(v, &n); err != nil {
				return fmt.Errorf("mindwell_streak: %w", err)
			}
			s = strconv.Itoa(n)
		}
		d.Streak = s
	}

	if v := raw["exported_at"]; len(v) > 0 && !bytes.Equal(v, []byte("null")) {
		var t time.Time
		if err := json.Unmarshal(v, &t); err != nil {
			return fmt.Errorf("exported_at: %w", err)
		}
		d.ExportedAt = &t
	}
	return nil
}

// decodeField decodes v into dst, unwrapping a JSON string first if needed.
// A missing or null value leaves dst untouched.
func decodeField(v json.RawMessage, dst any) error {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil
	}
	if v[0] == '"' {
		var inner string
		if err := json.Unmarshal(v, &inner); err != nil {
			return err
		}
		if inner == "" {
			return nil
		}
		v = json.RawMessage(inner)
	}
	return json.Unmarshal(v, dst)
}
