package watcher

import (
	"fmt"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
)

// negativeTrend is the number of negative entries among the recent journal
// window that counts as a trend.
const negativeTrend = 3

// streakMilestones are the streak lengths worth celebrating.
var streakMilestones = []int{7, 14, 30, 60, 100, 365}

// Compare detects notable changes between two watch states and returns
// alerts, most severe first.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical fires when recent mood falls into the low bands.
func compareCritical(prev, curr *WatchState) []Alert {
	if curr.Mood == 0 || curr.Mood > analyzer.MoodLow {
		return nil
	}
	if prev.Mood != 0 && prev.Mood <= curr.Mood {
		return nil
	}
	return []Alert{{
		Level: "critical",
		Title: "Your mood has dipped",
		Message: fmt.Sprintf("Recent mood is %s %s. Be gentle with yourself, and consider reaching out to someone you trust.",
			curr.Mood.Emoji(), curr.Mood),
		Time: curr.Timestamp,
	}}
}

// compareWarning fires when the journal turns negative.
func compareWarning(prev, curr *WatchState) []Alert {
	if curr.NegativeRecent < negativeTrend || prev.NegativeRecent >= negativeTrend {
		return nil
	}
	return []Alert{{
		Level:   "warning",
		Title:   "Challenging thoughts in your journal",
		Message: fmt.Sprintf("%d of your last %d entries were negative. Try writing down 3 things you're grateful for.", curr.NegativeRecent, journalWindow),
		Time:    curr.Timestamp,
	}}
}

// compareInfo reports new check-ins, recovered mood, and streak milestones.
func compareInfo(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := curr.Timestamp

	if n := curr.CheckIns - prev.CheckIns; n > 0 {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Check-in recorded",
			Message: fmt.Sprintf("%d new check-in(s), %d total", n, curr.CheckIns),
			Time:    now,
		})
	}

	if prev.Mood != 0 && prev.Mood <= analyzer.MoodLow && curr.Mood >= analyzer.MoodNeutral {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Mood is recovering",
			Message: fmt.Sprintf("Recent mood is back to %s %s.", curr.Mood.Emoji(), curr.Mood),
			Time:    now,
		})
	}

	if m, ok := crossedMilestone(prev.Streak, curr.Streak); ok {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   fmt.Sprintf("%d-day streak!", m),
			Message: "Consistency is key to building lasting wellness habits.",
			Time:    now,
		})
	}

	return alerts
}

// crossedMilestone returns the largest milestone in (prev, curr].
func crossedMilestone(prev, curr int) (int, bool) {
	best, ok := 0, false
	for _, m := range streakMilestones {
		if prev < m && curr >= m {
			best, ok = m, true
		}
	}
	return best, ok
}
