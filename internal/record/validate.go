package record

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// Validation errors. Callers surface these to the user; no record is
// created when one is returned.
var (
	ErrMoodRequired   = errors.New("please select your mood first")
	ErrMoodOutOfRange = fmt.Errorf("mood must be between %d and %d", MinMood, MaxMood)
	ErrEmptyText      = errors.New("please write something in your journal first")
)

// NewCheckIn builds a check-in stamped at now. A mood of 0 means no mood was
// selected. Activity tags are trimmed, lowercased and deduplicated.
func NewCheckIn(now time.Time, mood int, activities []string, notes string) (CheckIn, error) {
	if mood == 0 {
		return CheckIn{}, ErrMoodRequired
	}
	if mood < MinMood || mood > MaxMood {
		return CheckIn{}, ErrMoodOutOfRange
	}

	ms := now.UnixMilli()
	return CheckIn{
		ID:         ms,
		Date:       now,
		Mood:       mood,
		Activities: NormalizeActivities(activities),
		Notes:      strings.TrimSpace(notes),
		Timestamp:  ms,
	}, nil
}

// NewJournalEntry builds a journal entry stamped at now and attaches the
// sentiment of its text.
func NewJournalEntry(now time.Time, text string) (JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return JournalEntry{}, ErrEmptyText
	}

	ms := now.UnixMilli()
	return JournalEntry{
		ID:        ms,
		Date:      now,
		Text:      text,
		Sentiment: sentiment.Score(text),
		Timestamp: ms,
	}, nil
}

// NormalizeActivities trims and lowercases tags, dropping empties and
// duplicates while keeping first-seen order. The result is never nil.
func NormalizeActivities(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
