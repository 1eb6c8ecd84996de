package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_NoVocabularyWords(t *testing.T) {
	for _, text := range []string{
		"",
		"the weather today",
		"12345 !!! ???",
		"ünïcödé only",
	} {
		r := Score(text)
		assert.Equal(t, NeutralScore, r.Score, "text %q", text)
		assert.Equal(t, Neutral, r.Label, "text %q", text)
		assert.Equal(t, "neutral", r.Type, "text %q", text)
	}
}

func TestScore_Polarity(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score float64
		label Label
	}{
		{"all positive", "I feel happy and calm", 1.0, Positive},
		{"all negative", "sad, tired and lonely", 0.0, Negative},
		{"mixed negative", "happy but sad and stressed", 1.0 / 3.0, Negative},
		{"mixed positive", "great day, good food, bad traffic", 2.0 / 3.0, Positive},
		{"even split", "happy sad", 0.5, Neutral},
		{"mixed case and punctuation", "HAPPY!!! Really... happy?", 1.0, Positive},
		{"repeated words count each time", "bad bad bad good", 0.25, Negative},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Score(tc.text)
			assert.InDelta(t, tc.score, r.Score, 1e-9)
			assert.Equal(t, tc.label, r.Label)
		})
	}
}

func TestScore_BoundariesAreNeutral(t *testing.T) {
	// 2 positive / 5 total = 0.4
	low := Score("happy good sad bad awful")
	assert.Equal(t, 0.4, low.Score)
	assert.Equal(t, Neutral, low.Label)

	// 3 positive / 5 total = 0.6
	high := Score("happy good great sad bad")
	assert.Equal(t, 0.6, high.Score)
	assert.Equal(t, Neutral, high.Label)
}

func TestScore_Idempotent(t *testing.T) {
	text := "Felt anxious this morning but proud of finishing the run. Calm now."
	assert.Equal(t, Score(text), Score(text))
}

func TestScore_NoStemming(t *testing.T) {
	// "happiness" and "sadly" are not vocabulary words.
	r := Score("happiness sadly")
	assert.Equal(t, NeutralScore, r.Score)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"don", "t", "worry", "be_happy"}, Tokenize("Don't  worry, be_happy!"))
	assert.Empty(t, Tokenize("   ...  "))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Negative, Classify(0))
	assert.Equal(t, Negative, Classify(0.399))
	assert.Equal(t, Neutral, Classify(0.4))
	assert.Equal(t, Neutral, Classify(0.5))
	assert.Equal(t, Neutral, Classify(0.6))
	assert.Equal(t, Positive, Classify(0.601))
	assert.Equal(t, Positive, Classify(1))
}

func TestFromStored_KeepsLabel(t *testing.T) {
	// A stored label is kept even when today's thresholds would disagree.
	r := FromStored(0.9, "Negative")
	assert.Equal(t, Negative, r.Label)
	assert.Equal(t, "negative", r.Type)
	assert.Equal(t, 0.9, r.Score)

	assert.Equal(t, Neutral, FromStored(0.1, "garbage").Label)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Positive (75%)", Score("happy happy good sad").String())
	assert.Equal(t, "Neutral (50%)", Score("nothing here").String())
}

func TestVocabularies(t *testing.T) {
	assert.True(t, IsPositive("grateful"))
	assert.False(t, IsPositive("sad"))
	assert.True(t, IsNegative("overwhelmed"))
	assert.False(t, IsNegative("calm"))
	assert.Len(t, positiveWords, 34)
	assert.Len(t, negativeWords, 35)
}
