package watcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// fakeSource serves a fixed dashboard and journal.
type fakeSource struct {
	dash    tracker.Dashboard
	journal []record.JournalEntry
	err     error
}

func (f *fakeSource) Dashboard(context.Context) (tracker.Dashboard, error) {
	return f.dash, f.err
}

func (f *fakeSource) RecentJournal(_ context.Context, n int) ([]record.JournalEntry, error) {
	if n > len(f.journal) {
		n = len(f.journal)
	}
	return f.journal[:n], f.err
}

func negatives(n int) []record.JournalEntry {
	out := make([]record.JournalEntry, n)
	for i := range out {
		out[i] = record.JournalEntry{Sentiment: sentiment.FromStored(0.1, "Negative")}
	}
	return out
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSnapshot(t *testing.T) {
	last := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	src := &fakeSource{
		dash: tracker.Dashboard{
			Streak: 4, TotalEntries: 9, JournalEntries: 3,
			Mood: analyzer.MoodHigh, MoodAvailable: true,
			Recent: []record.CheckIn{{Date: last, Mood: 4}},
		},
		journal: negatives(2),
	}
	w := New(src, time.Minute, nil)

	state, err := w.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.CheckIns != 9 || state.JournalEntries != 3 || state.Streak != 4 {
		t.Errorf("unexpected counts: %+v", state)
	}
	if state.Mood != analyzer.MoodHigh {
		t.Errorf("expected high mood, got %s", state.Mood)
	}
	if !state.LastCheckIn.Equal(last) {
		t.Errorf("expected last check-in %v, got %v", last, state.LastCheckIn)
	}
	if state.NegativeRecent != 2 {
		t.Errorf("expected 2 negative entries, got %d", state.NegativeRecent)
	}
}

func TestSnapshot_EmptyHistory(t *testing.T) {
	w := New(&fakeSource{}, time.Minute, nil)
	state, err := w.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Mood != 0 || !state.LastCheckIn.IsZero() {
		t.Errorf("expected zero mood and time for empty history, got %+v", state)
	}
}

func TestCheck_SnapshotError(t *testing.T) {
	w := New(&fakeSource{err: errors.New("locked")}, time.Minute, nil)
	alerts := w.Check(context.Background())
	if len(alerts) != 1 || alerts[0].Title != "Snapshot failed" {
		t.Fatalf("expected a snapshot failure alert, got %+v", alerts)
	}
}

func TestCheck_DetectsNewCheckIn(t *testing.T) {
	src := &fakeSource{dash: tracker.Dashboard{TotalEntries: 1}}
	w := New(src, time.Minute, nil)
	ctx := context.Background()

	if alerts := w.Check(ctx); len(alerts) != 0 {
		t.Fatalf("first check has nothing to compare, got %+v", alerts)
	}

	src.dash.TotalEntries = 3
	alerts := w.Check(ctx)
	if len(alerts) != 1 || alerts[0].Title != "Check-in recorded" {
		t.Fatalf("expected a check-in alert, got %+v", alerts)
	}
	if alerts[0].Message != "2 new check-in(s), 3 total" {
		t.Errorf("unexpected message %q", alerts[0].Message)
	}
}

func TestCheck_Reminder(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	src := &fakeSource{dash: tracker.Dashboard{
		Streak: 5, TotalEntries: 5,
		Recent: []record.CheckIn{{Date: yesterday}},
	}}

	w := New(src, time.Minute, nil)
	w.now = fixedNow(now)
	w.RemindAfter = 20

	alerts := w.Check(context.Background())
	if len(alerts) != 1 || alerts[0].Title != "Time for a check-in" {
		t.Fatalf("expected a reminder, got %+v", alerts)
	}
	if alerts[0].Message != "Check in today to keep your 5-day streak." {
		t.Errorf("unexpected message %q", alerts[0].Message)
	}

	// The same reminder is not repeated on the next cycle.
	if alerts := w.Check(context.Background()); len(alerts) != 0 {
		t.Errorf("expected reminder to be deduplicated, got %+v", alerts)
	}
}

func TestCheck_ReminderAfterBrokenStreak(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	src := &fakeSource{dash: tracker.Dashboard{
		Streak: 5, TotalEntries: 5,
		Recent: []record.CheckIn{{Date: now.AddDate(0, 0, -3)}},
	}}

	w := New(src, time.Minute, nil)
	w.now = fixedNow(now)
	w.RemindAfter = 20

	alerts := w.Check(context.Background())
	if len(alerts) != 1 {
		t.Fatalf("expected a reminder, got %+v", alerts)
	}
	if alerts[0].Message != "How are you feeling today? A quick check-in keeps your streak going." {
		t.Errorf("a lapsed streak should not be quoted, got %q", alerts[0].Message)
	}
}

func TestCheck_NoReminder(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		remindAfter int
		last        time.Time
	}{
		{"disabled", -1, time.Time{}},
		{"before reminder hour", 22, time.Time{}},
		{"already checked in", 20, now.Add(-2 * time.Hour)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dash := tracker.Dashboard{}
			if !tc.last.IsZero() {
				dash.Recent = []record.CheckIn{{Date: tc.last}}
			}
			w := New(&fakeSource{dash: dash}, time.Minute, nil)
			w.now = fixedNow(now)
			w.RemindAfter = tc.remindAfter
			if alerts := w.Check(context.Background()); len(alerts) != 0 {
				t.Errorf("expected no alerts, got %+v", alerts)
			}
		})
	}
}

func TestCheckedInOn_UsesLocation(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*60*60)
	// 20:00 UTC on the 13th is the 14th in UTC+9.
	s := &WatchState{LastCheckIn: time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC)}
	if !s.CheckedInOn(time.Date(2026, 3, 14, 8, 0, 0, 0, zone)) {
		t.Error("expected check-in to count for the 14th in UTC+9")
	}
	if s.CheckedInOn(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)) {
		t.Error("expected check-in not to count for the 14th in UTC")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	w := New(&fakeSource{}, 10*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
