package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
)

func TestMoodByActivity(t *testing.T) {
	checkins := []record.CheckIn{
		{Mood: 4, Activities: []string{"exercise", "reading"}},
		{Mood: 2, Activities: []string{"exercise"}},
		{Mood: 5, Activities: []string{}},
	}
	got := MoodByActivity(checkins)
	require.Len(t, got, 2)
	assert.Equal(t, ActivityMood{Activity: "exercise", AvgMood: 3, Count: 2}, got[0])
	assert.Equal(t, ActivityMood{Activity: "reading", AvgMood: 4, Count: 1}, got[1])
}

func TestMoodByWeekday(t *testing.T) {
	// 2026-03-15 is a Sunday.
	sunday := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	checkins := []record.CheckIn{
		{Date: sunday, Mood: 2},
		{Date: sunday.AddDate(0, 0, 7), Mood: 4},
		{Date: sunday.AddDate(0, 0, 1), Mood: 5},
	}
	got := MoodByWeekday(checkins)
	assert.Equal(t, "Sunday", got[time.Sunday].Day)
	assert.Equal(t, 3.0, got[time.Sunday].AvgMood)
	assert.Equal(t, 2, got[time.Sunday].Count)
	assert.Equal(t, 5.0, got[time.Monday].AvgMood)
	assert.Equal(t, 0.0, got[time.Saturday].AvgMood)
	assert.Equal(t, "Saturday", got[time.Saturday].Day)
}

func TestMoodTimeline(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) // Sunday
	var checkins []record.CheckIn
	for i := 0; i < 9; i++ {
		checkins = append(checkins, record.CheckIn{Date: start.AddDate(0, 0, i), Mood: i%5 + 1})
	}
	got := MoodTimeline(checkins, DefaultWindow)
	require.Len(t, got, 7)
	assert.Equal(t, "Tue", got[0].Day)
	assert.Equal(t, "2026-03-03", got[0].Date)
	assert.Equal(t, 3, got[0].Mood)
}

func journalWith(labels ...sentiment.Label) []record.JournalEntry {
	out := make([]record.JournalEntry, len(labels))
	for i, l := range labels {
		out[i] = record.JournalEntry{Sentiment: sentiment.FromStored(0.5, string(l))}
	}
	return out
}

func TestCountSentiment(t *testing.T) {
	mix := CountSentiment(journalWith(sentiment.Positive, sentiment.Negative, sentiment.Neutral, sentiment.Negative))
	assert.Equal(t, SentimentMix{Positive: 1, Neutral: 1, Negative: 2}, mix)
	assert.Equal(t, 4, mix.Total())
}

func TestCountNegative_LastN(t *testing.T) {
	j := journalWith(
		sentiment.Negative, sentiment.Negative, // outside last 5
		sentiment.Negative, sentiment.Positive, sentiment.Negative, sentiment.Neutral, sentiment.Negative,
	)
	assert.Equal(t, 3, CountNegative(j, 5))
	assert.Equal(t, 5, CountNegative(j, 0))
}

func TestBuildInsights_Empty(t *testing.T) {
	in := BuildInsights(nil, nil)
	assert.Empty(t, in.MoodTimeline)
	assert.Empty(t, in.ActivityMood)
	assert.Equal(t, 0, in.SentimentMix.Total())
	assert.Equal(t, "Wednesday", in.WeekdayMood[time.Wednesday].Day)
}
