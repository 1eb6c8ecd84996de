// Package analyzer provides streak, wellness, and insight analysis over
// check-in and journal history. Every function here is pure: it reads the
// slices it is given and never modifies them.
package analyzer

// DefaultWindow is the number of most recent check-ins that rolling
// averages look at.
const DefaultWindow = 7

// MoodBucket is a qualitative band for a rounded mean mood.
type MoodBucket int

// Mood buckets in ascending order.
const (
	MoodVeryLow MoodBucket = iota + 1
	MoodLow
	MoodNeutral
	MoodHigh
	MoodVeryHigh
)

var bucketNames = [...]string{"", "very-low", "low", "neutral", "high", "very-high"}

var bucketEmoji = [...]string{"", "😢", "😟", "😐", "😊", "😄"}

// String returns the bucket name, e.g. "very-low".
func (b MoodBucket) String() string {
	if b < MoodVeryLow || b > MoodVeryHigh {
		return "unknown"
	}
	return bucketNames[b]
}

// Emoji returns the face shown for the bucket.
func (b MoodBucket) Emoji() string {
	if b < MoodVeryLow || b > MoodVeryHigh {
		return bucketEmoji[MoodNeutral]
	}
	return bucketEmoji[b]
}

// MarshalText encodes the bucket by name.
func (b MoodBucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// MoodEmoji returns the face for a single 1-5 mood value.
func MoodEmoji(mood int) string {
	return MoodBucket(mood).Emoji()
}

// Insights holds the data behind the insight charts.
type Insights struct {
	// MoodTimeline is the mood of each of the last 7 check-ins, oldest first.
	MoodTimeline []MoodPoint `json:"mood_timeline"`

	// ActivityMood is the average mood of check-ins carrying each activity,
	// sorted by activity name.
	ActivityMood []ActivityMood `json:"activity_mood"`

	// WeekdayMood is the average mood per weekday, Sunday first. Days with
	// no check-ins are 0.
	WeekdayMood [7]WeekdayMood `json:"weekday_mood"`

	// SentimentMix counts journal entries by sentiment label.
	SentimentMix SentimentMix `json:"sentiment_mix"`
}

// MoodPoint is one point on the mood timeline.
type MoodPoint struct {
	Day  string `json:"day"`
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

// ActivityMood is the average mood associated with an activity tag.
type ActivityMood struct {
	Activity string  `json:"activity"`
	AvgMood  float64 `json:"avg_mood"`
	Count    int     `json:"count"`
}

// WeekdayMood is the average mood for one day of the week.
type WeekdayMood struct {
	Day     string  `json:"day"`
	AvgMood float64 `json:"avg_mood"`
	Count   int     `json:"count"`
}

// SentimentMix counts journal entries per sentiment label.
type SentimentMix struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of entries counted.
func (m SentimentMix) Total() int {
	return m.Positive + m.Neutral + m.Negative
}
