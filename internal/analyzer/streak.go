package analyzer

import (
	"time"

	"github.com/blackwell-systems/mindwell/internal/record"
)

// ComputeStreak returns the number of consecutive calendar days, ending on
// today, that have at least one check-in. history must be ordered oldest
// first. Days are compared in today's location.
//
// The walk runs newest to oldest. A check-in on the target day extends the
// streak and moves the target back a day; a check-in dated after the target
// is another entry for a day already counted and is skipped; anything before
// the target means a day was missed, which ends the streak.
func ComputeStreak(history []record.CheckIn, today time.Time) int {
	loc := today.Location()
	target := startOfDay(today, loc)

	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		day := startOfDay(history[i].Date, loc)
		switch {
		case day.Equal(target):
			streak++
			target = target.AddDate(0, 0, -1)
		case day.Before(target):
			return streak
		}
	}
	return streak
}

// startOfDay truncates t to midnight of its calendar date in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
