// Package watcher polls the tracker at a regular interval and emits alerts
// when something worth telling the user changes: a mood drop, a run of
// negative journal entries, a streak milestone, or a missing check-in.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// journalWindow is how many recent journal entries count toward the
// negative trend.
const journalWindow = 5

// Source is the tracker data the watcher reads. *tracker.Service satisfies it.
type Source interface {
	Dashboard(ctx context.Context) (tracker.Dashboard, error)
	RecentJournal(ctx context.Context, n int) ([]record.JournalEntry, error)
}

// WatchState captures a point-in-time snapshot of tracker data.
type WatchState struct {
	Timestamp      time.Time
	CheckIns       int
	JournalEntries int
	Streak         int
	Mood           analyzer.MoodBucket // zero when there is no history
	LastCheckIn    time.Time           // zero when there is no history
	NegativeRecent int                 // negative entries among the last five
}

// CheckedInOn reports whether the latest check-in falls on the calendar day
// of t, in t's location.
func (s *WatchState) CheckedInOn(t time.Time) bool {
	if s.LastCheckIn.IsZero() {
		return false
	}
	y1, m1, d1 := s.LastCheckIn.In(t.Location()).Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Watcher polls a Source at a regular interval and emits alerts when
// notable changes are detected.
type Watcher struct {
	src           Source
	interval      time.Duration
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
	now           func() time.Time

	// RemindAfter is the hour of day (0-23) after which a missing check-in
	// for today triggers a reminder. Negative disables reminders.
	RemindAfter int
}

// New creates a Watcher over src.
func New(src Source, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		src:           src,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
		now:           time.Now,
		RemindAfter:   -1,
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, a := range w.Check(ctx) {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares it
// against the previous state, updates the previous state, and returns any
// alerts. Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check(ctx context.Context) []Alert {
	now := w.now()
	curr, err := w.Snapshot(ctx)
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not read tracker data: %v", err),
			Time:    now,
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}
	if a, ok := w.reminder(curr, now); ok {
		raw = append(raw, a)
	}

	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// reminder returns a check-in reminder when none was made today and the
// reminder hour has passed.
func (w *Watcher) reminder(curr *WatchState, now time.Time) (Alert, bool) {
	if w.RemindAfter < 0 || now.Hour() < w.RemindAfter || curr.CheckedInOn(now) {
		return Alert{}, false
	}
	msg := "How are you feeling today? A quick check-in keeps your streak going."
	// The cached streak is only still alive when the last check-in was
	// yesterday.
	if curr.Streak > 0 && curr.CheckedInOn(now.AddDate(0, 0, -1)) {
		msg = fmt.Sprintf("Check in today to keep your %d-day streak.", curr.Streak)
	}
	return Alert{
		Level:   "info",
		Title:   "Time for a check-in",
		Message: msg,
		Time:    now,
	}, true
}

// Snapshot captures the current state from the tracker.
func (w *Watcher) Snapshot(ctx context.Context) (*WatchState, error) {
	d, err := w.src.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := w.src.RecentJournal(ctx, journalWindow)
	if err != nil {
		return nil, err
	}

	state := &WatchState{
		Timestamp:      w.now(),
		CheckIns:       d.TotalEntries,
		JournalEntries: d.JournalEntries,
		Streak:         d.Streak,
		NegativeRecent: analyzer.CountNegative(recent, journalWindow),
	}
	if d.MoodAvailable {
		state.Mood = d.Mood
	}
	if len(d.Recent) > 0 {
		state.LastCheckIn = d.Recent[0].Date
	}
	return state, nil
}
