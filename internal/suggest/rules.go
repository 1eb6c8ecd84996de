package suggest

import (
	"fmt"

	"github.com/blackwell-systems/mindwell/internal/analyzer"
)

// Mood thresholds for MoodTrend.
const (
	lowMoodThreshold  = 3.0
	highMoodThreshold = 4.0
)

// Journal thresholds for JournalSentiment.
const (
	defaultJournalWindow = 5
	negativeEntryTrigger = 2
)

// celebrateAfterDays is the streak length beyond which StreakCelebration fires.
const celebrateAfterDays = 7

var (
	startJourney = Recommendation{
		Icon:        "🌟",
		Title:       "Start Your Journey",
		Description: "Complete your first mood check-in to receive personalized recommendations!",
		Category:    CategoryOnboarding,
		Priority:    PriorityHigh,
	}

	focusOnSelfCare = Recommendation{
		Icon:  "🌱",
		Title: "Focus on Self-Care",
		Description: "Your recent mood scores suggest you might benefit from extra self-care. " +
			"Try meditation, gentle exercise, or talking to someone you trust.",
		Category: CategoryMood,
		Priority: PriorityHigh,
	}

	keepUpTheGreatWork = Recommendation{
		Icon:  "🎉",
		Title: "Keep Up the Great Work!",
		Description: "You're doing amazing! Your mood has been consistently positive. " +
			"Consider sharing your strategies with others or trying new challenges.",
		Category: CategoryMood,
		Priority: PriorityLow,
	}

	addMovement = Recommendation{
		Icon:  "🏃",
		Title: "Add More Movement",
		Description: "Regular exercise can significantly boost your mood. " +
			"Try starting with just 10 minutes of walking or stretching daily.",
		Category: CategoryActivity,
		Priority: PriorityMedium,
	}

	tryMindfulness = Recommendation{
		Icon:  "🧘",
		Title: "Try Mindfulness",
		Description: "Meditation and mindfulness practices can help reduce stress and improve " +
			"emotional well-being. Start with 5 minutes daily.",
		Category: CategoryActivity,
		Priority: PriorityMedium,
	}

	connectWithOthers = Recommendation{
		Icon:  "👥",
		Title: "Connect with Others",
		Description: "Social connections are vital for mental health. Reach out to friends, " +
			"family, or consider joining a community group.",
		Category: CategoryActivity,
		Priority: PriorityMedium,
	}

	practiceGratitude = Recommendation{
		Icon:  "💭",
		Title: "Practice Gratitude",
		Description: "Your recent journal entries show some challenging thoughts. " +
			"Try writing down 3 things you're grateful for each day.",
		Category: CategoryJournal,
		Priority: PriorityHigh,
	}

	keepBuildingHabits = Recommendation{
		Icon:  "🌟",
		Title: "Keep Building Habits",
		Description: "You're on a great path! Continue with regular check-ins and try " +
			"incorporating new wellness activities into your routine.",
		Category: CategoryGeneral,
		Priority: PriorityLow,
	}
)

// StartJourney prompts for a first check-in when there is no history.
func StartJourney(ctx *AnalysisContext) []Recommendation {
	if len(ctx.CheckIns) > 0 {
		return nil
	}
	return []Recommendation{startJourney}
}

// MoodTrend suggests self-care when the recent average mood is below 3 and
// offers encouragement when it is above 4.
func MoodTrend(ctx *AnalysisContext) []Recommendation {
	avg, ok := analyzer.AverageMood(ctx.CheckIns, ctx.Window)
	if !ok {
		return nil
	}
	switch {
	case avg < lowMoodThreshold:
		return []Recommendation{focusOnSelfCare}
	case avg > highMoodThreshold:
		return []Recommendation{keepUpTheGreatWork}
	}
	return nil
}

// ActivityGap returns a rule that emits rec when tag appears fewer than atLeast
// times in the recent check-ins.
func ActivityGap(tag string, atLeast int, rec Recommendation) Rule {
	return func(ctx *AnalysisContext) []Recommendation {
		if analyzer.CountActivity(ctx.CheckIns, ctx.Window, tag) < atLeast {
			return []Recommendation{rec}
		}
		return nil
	}
}

// JournalSentiment suggests a gratitude practice when more than two of the
// recent journal entries are negative.
func JournalSentiment(ctx *AnalysisContext) []Recommendation {
	window := ctx.JournalWindow
	if window <= 0 {
		window = defaultJournalWindow
	}
	if analyzer.CountNegative(ctx.Journal, window) > negativeEntryTrigger {
		return []Recommendation{practiceGratitude}
	}
	return nil
}

// StreakCelebration congratulates streaks longer than a week.
func StreakCelebration(ctx *AnalysisContext) []Recommendation {
	if ctx.Streak <= celebrateAfterDays {
		return nil
	}
	return []Recommendation{{
		Icon:  "🏆",
		Title: "Celebrate Your Consistency!",
		Description: fmt.Sprintf(
			"Amazing! You've maintained a %d-day streak. "+
				"Consistency is key to building lasting wellness habits.",
			ctx.Streak,
		),
		Category: CategoryConsistency,
		Priority: PriorityLow,
	}}
}
