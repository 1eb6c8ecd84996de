package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/mindwell/internal/record"
)

var testLoc = time.FixedZone("test", -5*60*60)

// today is late evening so same-day check-ins can land at various hours.
var today = time.Date(2026, 3, 14, 21, 15, 0, 0, testLoc)

// checkinsOn builds check-ins at 08:00 local on each offset from today
// (0 = today, -1 = yesterday), in the order given.
func checkinsOn(offsets ...int) []record.CheckIn {
	out := make([]record.CheckIn, 0, len(offsets))
	for _, off := range offsets {
		d := time.Date(2026, 3, 14, 8, 0, 0, 0, testLoc).AddDate(0, 0, off)
		out = append(out, record.CheckIn{ID: d.UnixMilli(), Date: d, Mood: 3, Activities: []string{}})
	}
	return out
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"empty history", nil, 0},
		{"three consecutive days", []int{-2, -1, 0}, 3},
		{"three consecutive with older gap", []int{-5, -2, -1, 0}, 3},
		{"gap yesterday", []int{-2, 0}, 1},
		{"only today", []int{0}, 1},
		{"nothing today", []int{-2, -1}, 0},
		{"duplicates on a day count once", []int{-1, -1, -1, 0, 0}, 2},
		{"ten days", []int{-9, -8, -7, -6, -5, -4, -3, -2, -1, 0}, 10},
		{"future entry is skipped", []int{-1, 0, 1}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStreak(checkinsOn(tc.offsets...), today)
			if got != tc.want {
				t.Errorf("ComputeStreak() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeStreak_TimeOfDayIgnored(t *testing.T) {
	history := []record.CheckIn{
		{Date: time.Date(2026, 3, 13, 23, 59, 0, 0, testLoc)},
		{Date: time.Date(2026, 3, 14, 0, 0, 1, 0, testLoc)},
	}
	if got := ComputeStreak(history, today); got != 2 {
		t.Errorf("ComputeStreak() = %d, want 2", got)
	}
}

func TestComputeStreak_UsesTodaysLocation(t *testing.T) {
	// 2026-03-14 02:00 UTC is still 2026-03-13 in testLoc (UTC-5).
	history := []record.CheckIn{
		{Date: time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)},
	}
	if got := ComputeStreak(history, today); got != 0 {
		t.Errorf("ComputeStreak() = %d, want 0 (entry belongs to yesterday)", got)
	}
	yesterday := today.AddDate(0, 0, -1)
	if got := ComputeStreak(history, yesterday); got != 1 {
		t.Errorf("ComputeStreak(yesterday) = %d, want 1", got)
	}
}

func TestComputeStreak_DoesNotModifyHistory(t *testing.T) {
	history := checkinsOn(-1, 0)
	before := history[0].Date
	ComputeStreak(history, today)
	if !history[0].Date.Equal(before) {
		t.Error("ComputeStreak modified its input")
	}
}
