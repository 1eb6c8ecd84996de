// Package sentiment scores free text by counting words from two fixed
// vocabularies of affect-bearing words.
package sentiment

import (
	"math"
	"strconv"
	"strings"
)

// Label is the polarity assigned to a score.
type Label string

// Polarity labels.
const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Classification thresholds. Both boundaries resolve to Neutral.
const (
	PositiveThreshold = 0.6
	NegativeThreshold = 0.4
)

// NeutralScore is the score given to text with no vocabulary hits.
const NeutralScore = 0.5

// Result is the outcome of scoring a piece of text.
type Result struct {
	// Score is the fraction of matched words that are positive, in [0,1].
	Score float64 `json:"score"`
	Label Label   `json:"label"`

	// Type is the lowercase form of Label.
	Type string `json:"type"`
}

// Percent returns the score as a whole percentage for display.
func (r Result) Percent() int {
	return int(math.Round(r.Score * 100))
}

// String renders the result the way the journal view shows it,
// e.g. "Positive (75%)".
func (r Result) String() string {
	return string(r.Label) + " (" + strconv.Itoa(r.Percent()) + "%)"
}

// Classify maps a score to its label.
func Classify(score float64) Label {
	switch {
	case score > PositiveThreshold:
		return Positive
	case score < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// FromStored rebuilds a result from a persisted score and label without
// reclassifying it. An unknown label falls back to Neutral.
func FromStored(score float64, label string) Result {
	l := Label(label)
	switch l {
	case Positive, Negative, Neutral:
	default:
		l = Neutral
	}
	return Result{Score: score, Label: l, Type: strings.ToLower(string(l))}
}

// Score computes the sentiment of text. It never fails.
func Score(text string) Result {
	pos, neg := Count(text)
	total := pos + neg
	if total == 0 {
		return newResult(NeutralScore)
	}
	return newResult(float64(pos) / float64(total))
}

// Count returns the number of positive and negative vocabulary words in text.
func Count(text string) (pos, neg int) {
	for _, w := range Tokenize(text) {
		if IsPositive(w) {
			pos++
		}
		if IsNegative(w) {
			neg++
		}
	}
	return pos, neg
}

// Tokenize lowercases text and splits it on runs of non-word characters
// (anything outside [A-Za-z0-9_]).
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordChar(r)
	})
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func newResult(score float64) Result {
	l := Classify(score)
	return Result{Score: score, Label: l, Type: strings.ToLower(string(l))}
}
