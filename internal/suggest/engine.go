package suggest

// DefaultLimit is the maximum number of recommendations returned.
const DefaultLimit = 4

// Engine evaluates an ordered list of rules and collects what they produce.
//
// Guards run first; the first guard that produces anything ends evaluation
// and its output is returned as is. Otherwise every rule runs in order, the
// fallback is used if nothing was produced, and the list is cut to limit.
type Engine struct {
	guards   []Rule
	rules    []Rule
	fallback Recommendation
	limit    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimit overrides DefaultLimit. A non-positive limit disables the cap.
func WithLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithRules appends extra rules after the built-in ones.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) { e.rules = append(e.rules, rules...) }
}

// NewEngine creates an engine with all built-in rules registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		guards: []Rule{
			StartJourney,
		},
		rules: []Rule{
			MoodTrend,
			ActivityGap("exercise", 3, addMovement),
			ActivityGap("meditation", 2, tryMindfulness),
			ActivityGap("socializing", 2, connectWithOthers),
			JournalSentiment,
			StreakCelebration,
		},
		fallback: keepBuildingHabits,
		limit:    DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates the rules against ctx. The result holds at most limit
// items, in the order the rules produced them.
func (e *Engine) Run(ctx *AnalysisContext) []Recommendation {
	for _, guard := range e.guards {
		if out := guard(ctx); len(out) > 0 {
			return out
		}
	}

	var all []Recommendation
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}

	if len(all) == 0 {
		all = append(all, e.fallback)
	}

	if e.limit > 0 && len(all) > e.limit {
		all = all[:e.limit]
	}
	return all
}

// FilterByCategory returns the recommendations in the given category.
func FilterByCategory(recs []Recommendation, category string) []Recommendation {
	var filtered []Recommendation
	for _, r := range recs {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
