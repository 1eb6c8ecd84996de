// Package record defines the check-in and journal records that mindwell
// stores, plus the validation applied before a record is created.
package record

import (
	"time"

	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// Mood bounds for a check-in.
const (
	MinMood = 1
	MaxMood = 5
)

// KnownActivities are the activity tags offered by the check-in form.
// Other tags are accepted; these are the ones recommendations look at.
var KnownActivities = []string{
	"exercise",
	"meditation",
	"socializing",
	"reading",
	"work",
	"sleep",
	"nature",
	"hobbies",
}

// CheckIn is a single mood/activity/notes record for one moment in time.
type CheckIn struct {
	// ID is the creation time in Unix milliseconds.
	ID int64 `json:"id"`

	// Date is the local wall-clock time the check-in was made.
	Date time.Time `json:"date"`

	// Mood is the self-reported mood, 1 (very low) to 5 (very high).
	Mood int `json:"mood"`

	// Activities is the set of activity tags. Never nil once loaded.
	Activities []string `json:"activities"`

	Notes string `json:"notes"`

	// Timestamp is the creation instant in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// HasActivity reports whether the check-in carries the given tag.
func (c CheckIn) HasActivity(tag string) bool {
	for _, a := range c.Activities {
		if a == tag {
			return true
		}
	}
	return false
}

// JournalEntry is a free-text journal record. Its sentiment is computed when
// the entry is created and never recomputed.
type JournalEntry struct {
	ID        int64            `json:"id"`
	Date      time.Time        `json:"date"`
	Text      string           `json:"text"`
	Sentiment sentiment.Result `json:"sentiment"`
	Timestamp int64            `json:"timestamp"`
}

// Preview returns the entry text cut to n characters with a trailing
// ellipsis when it was longer.
func (j JournalEntry) Preview(n int) string {
	r := []rune(j.Text)
	if n <= 0 || len(r) <= n {
		return j.Text
	}
	return string(r[:n]) + "..."
}
