package analyzer

import (
	"sort"
	"time"

	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

// BuildInsights computes the mood timeline, activity/mood correlation,
// weekday averages, and journal sentiment mix.
func BuildInsights(checkins []record.CheckIn, journal []record.JournalEntry) Insights {
	return Insights{
		MoodTimeline: MoodTimeline(checkins, DefaultWindow),
		ActivityMood: MoodByActivity(checkins),
		WeekdayMood:  MoodByWeekday(checkins),
		SentimentMix: CountSentiment(journal),
	}
}

// MoodTimeline returns the mood of the last window check-ins, oldest first.
func MoodTimeline(checkins []record.CheckIn, window int) []MoodPoint {
	recent := Recent(checkins, window)
	points := make([]MoodPoint, 0, len(recent))
	for _, c := range recent {
		points = append(points, MoodPoint{
			Day:  c.Date.Format("Mon"),
			Date: c.Date.Format(time.DateOnly),
			Mood: c.Mood,
		})
	}
	return points
}

// MoodByActivity returns, for every activity seen in the full history, the
// average mood of the check-ins that carry it.
func MoodByActivity(checkins []record.CheckIn) []ActivityMood {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, c := range checkins {
		for _, a := range c.Activities {
			sums[a] += c.Mood
			counts[a]++
		}
	}

	out := make([]ActivityMood, 0, len(counts))
	for a, n := range counts {
		out = append(out, ActivityMood{
			Activity: a,
			AvgMood:  float64(sums[a]) / float64(n),
			Count:    n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Activity < out[j].Activity
	})
	return out
}

// MoodByWeekday returns the average mood for each day of the week over the
// full history, Sunday first.
func MoodByWeekday(checkins []record.CheckIn) [7]WeekdayMood {
	var sums [7]int
	var out [7]WeekdayMood
	for d := time.Sunday; d <= time.Saturday; d++ {
		out[d].Day = d.String()
	}
	for _, c := range checkins {
		d := c.Date.Weekday()
		sums[d] += c.Mood
		out[d].Count++
	}
	for d := range out {
		if out[d].Count > 0 {
			out[d].AvgMood = float64(sums[d]) / float64(out[d].Count)
		}
	}
	return out
}

// CountSentiment tallies journal entries by their stored sentiment label.
func CountSentiment(journal []record.JournalEntry) SentimentMix {
	var mix SentimentMix
	for _, j := range journal {
		switch j.Sentiment.Label {
		case sentiment.Positive:
			mix.Positive++
		case sentiment.Negative:
			mix.Negative++
		default:
			mix.Neutral++
		}
	}
	return mix
}

// CountNegative returns how many of the last n journal entries are labelled
// Negative.
func CountNegative(journal []record.JournalEntry, n int) int {
	if n > 0 && len(journal) > n {
		journal = journal[len(journal)-n:]
	}
	count := 0
	for _, j := range journal {
		if j.Sentiment.Label == sentiment.Negative {
			count++
		}
	}
	return count
}
