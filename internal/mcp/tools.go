package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blackwell-systems/mindwell/internal/sentiment"
	"github.com/blackwell-systems/mindwell/internal/suggest"
)

// RecentMoodResult describes the user's recent mood.
type RecentMoodResult struct {
	Available   bool    `json:"available"`
	Mood        string  `json:"mood,omitempty"`
	Emoji       string  `json:"emoji,omitempty"`
	AverageMood float64 `json:"average_mood"`
	CheckIns    int     `json:"checkins"`
}

// WellnessScoreResult holds the 0-100 wellness score.
type WellnessScoreResult struct {
	Available bool `json:"available"`
	Score     int  `json:"score"`
}

// StreakResult holds the consecutive-day check-in streak.
type StreakResult struct {
	Streak int `json:"streak"`
}

// RecommendationsResult holds the current recommendations in rule order.
type RecommendationsResult struct {
	Recommendations []suggest.Recommendation `json:"recommendations"`
}

// SentimentResult is the analysis of a piece of text.
type SentimentResult struct {
	Score   float64 `json:"score"`
	Label   string  `json:"label"`
	Percent int     `json:"percent"`
	Summary string  `json:"summary"`
}

var (
	noArgsSchema = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false}`)
	textSchema   = json.RawMessage(`{"type":"object","properties":{"text":{"type":"string","description":"Text to analyze"}},"required":["text"],"additionalProperties":false}`)
)

// addTools registers all MCP tool handlers on s.
func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "get_recent_mood",
		Description: "Mood band and average mood over the most recent check-ins.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetRecentMood,
	})
	s.registerTool(toolDef{
		Name:        "get_wellness_score",
		Description: "Wellness score (0-100) from recent moods and activities.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetWellnessScore,
	})
	s.registerTool(toolDef{
		Name:        "get_recommendations",
		Description: "Personalized wellness recommendations, in priority order.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetRecommendations,
	})
	s.registerTool(toolDef{
		Name:        "get_streak",
		Description: "Number of consecutive days with at least one check-in.",
		InputSchema: noArgsSchema,
		Handler:     s.handleGetStreak,
	})
	s.registerTool(toolDef{
		Name:        "analyze_sentiment",
		Description: "Lexical sentiment of a piece of text. Nothing is saved.",
		InputSchema: textSchema,
		Handler:     s.handleAnalyzeSentiment,
	})
}

func (s *Server) handleGetRecentMood(ctx context.Context, _ json.RawMessage) (any, error) {
	d, err := s.svc.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	res := RecentMoodResult{Available: d.MoodAvailable, CheckIns: d.TotalEntries}
	if d.MoodAvailable {
		res.Mood = d.Mood.String()
		res.Emoji = d.MoodEmoji
		res.AverageMood = d.AverageMood
	}
	return res, nil
}

func (s *Server) handleGetWellnessScore(ctx context.Context, _ json.RawMessage) (any, error) {
	d, err := s.svc.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return WellnessScoreResult{Available: d.WellnessAvailable, Score: d.WellnessScore}, nil
}

func (s *Server) handleGetRecommendations(ctx context.Context, _ json.RawMessage) (any, error) {
	recs, err := s.svc.Recommendations(ctx)
	if err != nil {
		return nil, err
	}
	return RecommendationsResult{Recommendations: recs}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, _ json.RawMessage) (any, error) {
	streak, err := s.svc.Streak(ctx)
	if err != nil {
		return nil, err
	}
	return StreakResult{Streak: streak}, nil
}

func (s *Server) handleAnalyzeSentiment(_ context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Text == "" {
		return nil, errors.New("text is required")
	}

	res, err := s.svc.Analyze(params.Text)
	if err != nil {
		return nil, err
	}
	return sentimentResult(res), nil
}

func sentimentResult(r sentiment.Result) SentimentResult {
	return SentimentResult{
		Score:   r.Score,
		Label:   string(r.Label),
		Percent: r.Percent(),
		Summary: r.String(),
	}
}
