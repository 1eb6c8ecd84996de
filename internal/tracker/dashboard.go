package tracker

import (
	"context"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/record"
)

// Dashboard is the summary shown on the main screen. MoodAvailable and
// WellnessAvailable are false when there is no check-in history.
type Dashboard struct {
	Streak            int                 `json:"streak"`
	Mood              analyzer.MoodBucket `json:"mood,omitempty"`
	MoodEmoji         string              `json:"mood_emoji,omitempty"`
	MoodAvailable     bool                `json:"mood_available"`
	AverageMood       float64             `json:"average_mood"`
	TotalEntries      int                 `json:"total_entries"`
	JournalEntries    int                 `json:"journal_entries"`
	WellnessScore     int                 `json:"wellness_score"`
	WellnessAvailable bool                `json:"wellness_available"`
	Recent            []record.CheckIn    `json:"recent"`
}

// Dashboard loads the stored history and summarizes it.
func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		Streak:         snap.streak,
		TotalEntries:   len(snap.checkins),
		JournalEntries: len(snap.journal),
		Recent:         newestFirst(snap.checkins, recentCheckIns),
	}
	if bucket, ok := analyzer.RecentMood(snap.checkins, s.opts.Window); ok {
		d.Mood = bucket
		d.MoodEmoji = bucket.Emoji()
		d.MoodAvailable = true
		d.AverageMood, _ = analyzer.AverageMood(snap.checkins, s.opts.Window)
	}
	if score, ok := analyzer.WellnessScore(snap.checkins, s.opts.Window); ok {
		d.WellnessScore = score
		d.WellnessAvailable = true
	}
	return d, nil
}
