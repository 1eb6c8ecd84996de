package analyzer

import (
	"math"

	"github.com/blackwell-systems/mindwell/internal/record"
)

// Wellness score weights.
const (
	moodPoints     = 20
	activityPoints = 5
	maxScore       = 100
)

// Recent returns the last n check-ins (all of them when there are fewer).
// A non-positive n selects DefaultWindow. The result shares the backing
// array of checkins.
func Recent(checkins []record.CheckIn, n int) []record.CheckIn {
	if n <= 0 {
		n = DefaultWindow
	}
	if len(checkins) <= n {
		return checkins
	}
	return checkins[len(checkins)-n:]
}

// AverageMood returns the arithmetic mean mood over the last window
// check-ins. ok is false when there is no history.
func AverageMood(checkins []record.CheckIn, window int) (avg float64, ok bool) {
	recent := Recent(checkins, window)
	if len(recent) == 0 {
		return 0, false
	}
	sum := 0
	for _, c := range recent {
		sum += c.Mood
	}
	return float64(sum) / float64(len(recent)), true
}

// RecentMood returns the mood bucket for the rounded mean mood over the
// last window check-ins. ok is false when there is no history.
func RecentMood(checkins []record.CheckIn, window int) (MoodBucket, bool) {
	avg, ok := AverageMood(checkins, window)
	if !ok {
		return 0, false
	}
	b := MoodBucket(math.Round(avg))
	if b < MoodVeryLow {
		b = MoodVeryLow
	}
	if b > MoodVeryHigh {
		b = MoodVeryHigh
	}
	return b, true
}

// EntryScore is the wellness contribution of a single check-in:
// mood*20 plus 5 per activity.
func EntryScore(c record.CheckIn) int {
	return c.Mood*moodPoints + len(c.Activities)*activityPoints
}

// WellnessScore averages EntryScore over the last window check-ins, rounds
// it, and clamps it to [0,100]. ok is false when there is no history.
func WellnessScore(checkins []record.CheckIn, window int) (score int, ok bool) {
	recent := Recent(checkins, window)
	if len(recent) == 0 {
		return 0, false
	}
	total := 0
	for _, c := range recent {
		total += EntryScore(c)
	}
	score = int(math.Round(float64(total) / float64(len(recent))))
	return clamp(score, 0, maxScore), true
}

// CountActivity returns how many of the last window check-ins carry tag.
func CountActivity(checkins []record.CheckIn, window int, tag string) int {
	n := 0
	for _, c := range Recent(checkins, window) {
		if c.HasActivity(tag) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
