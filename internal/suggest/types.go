// Package suggest provides the recommendation engine and its rules.
package suggest

import "github.com/blackwell-systems/mindwell/internal/record"

// Priority levels for recommendations. They only affect styling; output
// order is always rule order.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Categories group recommendations for filtering.
const (
	CategoryOnboarding  = "onboarding"
	CategoryMood        = "mood"
	CategoryActivity    = "activity"
	CategoryJournal     = "journal"
	CategoryConsistency = "consistency"
	CategoryGeneral     = "general"
)

// Recommendation is a single piece of advice shown to the user.
type Recommendation struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"`
}

// AnalysisContext is the snapshot the rules read. Rules must not modify it.
type AnalysisContext struct {
	// CheckIns is the full check-in history, oldest first.
	CheckIns []record.CheckIn `json:"checkins"`

	// Journal is the full journal history, oldest first.
	Journal []record.JournalEntry `json:"journal"`

	// Streak is the stored consecutive-day streak.
	Streak int `json:"streak"`

	// Window is how many recent check-ins mood and activity rules consider.
	// Zero means the default of 7.
	Window int `json:"window"`

	// JournalWindow is how many recent journal entries the sentiment rule
	// considers. Zero means the default of 5.
	JournalWindow int `json:"journal_window"`
}

// Rule examines the context and produces zero or more recommendations.
type Rule func(ctx *AnalysisContext) []Recommendation
