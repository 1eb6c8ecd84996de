// Package tracker ties the record store to the analytics. Every front end
// (CLI, HTTP API, MCP server) goes through a Service.
package tracker

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
	"github.com/blackwell-systems/mindwell/internal/record"
	"github.com/blackwell-systems/mindwell/internal/sentiment"
	"github.com/blackwell-systems/mindwell/internal/suggest"
)

// Validation errors, re-exported so callers can match them with errors.Is
// without importing record.
var (
	ErrMoodRequired   = record.ErrMoodRequired
	ErrMoodOutOfRange = record.ErrMoodOutOfRange
	ErrEmptyText      = record.ErrEmptyText
)

// recentCheckIns is how many check-ins the dashboard lists.
const recentCheckIns = 5

// Store is the persistence the tracker needs. *store.DB satisfies it.
type Store interface {
	AppendCheckIn(ctx context.Context, c record.CheckIn) error
	AppendJournalEntry(ctx context.Context, j record.JournalEntry) error
	ReadAllCheckIns(ctx context.Context) ([]record.CheckIn, error)
	ReadAllJournalEntries(ctx context.Context) ([]record.JournalEntry, error)
	ReadStreak(ctx context.Context) (int, error)
	WriteStreak(ctx context.Context, streak int) error
}

// Options tunes the analytics windows. Zero values select the defaults.
type Options struct {
	Window              int
	JournalWindow       int
	RecommendationLimit int
}

// Service runs tracker operations against a Store.
type Service struct {
	store  Store
	opts   Options
	engine *suggest.Engine
	now    func() time.Time
}

// New creates a Service over st.
func New(st Store, opts Options) *Service {
	if opts.Window <= 0 {
		opts.Window = analyzer.DefaultWindow
	}
	if opts.RecommendationLimit <= 0 {
		opts.RecommendationLimit = suggest.DefaultLimit
	}
	return &Service{
		store:  st,
		opts:   opts,
		engine: suggest.NewEngine(suggest.WithLimit(opts.RecommendationLimit)),
		now:    time.Now,
	}
}

// CheckInInput is what the user submits for a check-in.
type CheckInInput struct {
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// SubmitCheckIn validates and stores a check-in, then recomputes and stores
// the streak from the full history. Nothing is written when validation
// fails.
func (s *Service) SubmitCheckIn(ctx context.Context, in CheckInInput) (record.CheckIn, int, error) {
	now := s.now()
	c, err := record.NewCheckIn(now, in.Mood, in.Activities, in.Notes)
	if err != nil {
		return record.CheckIn{}, 0, err
	}
	if err := s.store.AppendCheckIn(ctx, c); err != nil {
		return record.CheckIn{}, 0, fmt.Errorf("saving check-in: %w", err)
	}

	history, err := s.store.ReadAllCheckIns(ctx)
	if err != nil {
		return c, 0, fmt.Errorf("reading check-ins: %w", err)
	}
	streak := analyzer.ComputeStreak(history, now)
	if err := s.store.WriteStreak(ctx, streak); err != nil {
		return c, 0, fmt.Errorf("saving streak: %w", err)
	}
	return c, streak, nil
}

// SaveJournal scores and stores a journal entry.
func (s *Service) SaveJournal(ctx context.Context, text string) (record.JournalEntry, error) {
	entry, err := record.NewJournalEntry(s.now(), text)
	if err != nil {
		return record.JournalEntry{}, err
	}
	if err := s.store.AppendJournalEntry(ctx, entry); err != nil {
		return record.JournalEntry{}, fmt.Errorf("saving journal entry: %w", err)
	}
	return entry, nil
}

// Analyze scores text without saving it.
func (s *Service) Analyze(text string) (sentiment.Result, error) {
	entry, err := record.NewJournalEntry(s.now(), text)
	if err != nil {
		return sentiment.Result{}, err
	}
	return entry.Sentiment, nil
}

// snapshot is one consistent read of everything the analytics need.
type snapshot struct {
	checkins []record.CheckIn
	journal  []record.JournalEntry
	streak   int
}

// load reads check-ins, journal entries and the streak concurrently.
func (s *Service) load(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.checkins, err = s.store.ReadAllCheckIns(gctx)
		if err != nil {
			return fmt.Errorf("reading check-ins: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.journal, err = s.store.ReadAllJournalEntries(gctx)
		if err != nil {
			return fmt.Errorf("reading journal: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snap.streak, err = s.store.ReadStreak(gctx)
		if err != nil {
			return fmt.Errorf("reading streak: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (s *Service) analysisContext(snap snapshot) *suggest.AnalysisContext {
	return &suggest.AnalysisContext{
		CheckIns:      snap.checkins,
		Journal:       snap.journal,
		Streak:        snap.streak,
		Window:        s.opts.Window,
		JournalWindow: s.opts.JournalWindow,
	}
}

// Recommendations runs the recommendation engine over the stored history.
func (s *Service) Recommendations(ctx context.Context) ([]suggest.Recommendation, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Run(s.analysisContext(snap)), nil
}

// Insights builds the chart data over the stored history.
func (s *Service) Insights(ctx context.Context) (analyzer.Insights, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return analyzer.Insights{}, err
	}
	return analyzer.BuildInsights(snap.checkins, snap.journal), nil
}

// RecentJournal returns up to n journal entries, newest first. A
// non-positive n returns all of them.
func (s *Service) RecentJournal(ctx context.Context, n int) ([]record.JournalEntry, error) {
	entries, err := s.store.ReadAllJournalEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return newestFirst(entries, n), nil
}

// RecentCheckIns returns up to n check-ins, newest first. A non-positive n
// returns all of them.
func (s *Service) RecentCheckIns(ctx context.Context, n int) ([]record.CheckIn, error) {
	checkins, err := s.store.ReadAllCheckIns(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading check-ins: %w", err)
	}
	return newestFirst(checkins, n), nil
}

// Streak returns the stored streak.
func (s *Service) Streak(ctx context.Context) (int, error) {
	streak, err := s.store.ReadStreak(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading streak: %w", err)
	}
	return streak, nil
}

// newestFirst returns a reversed copy of the last n items of an
// oldest-first slice.
func newestFirst[T any](items []T, n int) []T {
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}
