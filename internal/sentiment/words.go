package sentiment

// positiveWords and negativeWords are built once at package init and only
// read afterwards.
var (
	positiveWords = wordSet(
		"happy", "joy", "love", "excited", "grateful", "blessed", "amazing", "wonderful",
		"great", "fantastic", "excellent", "good", "positive", "optimistic", "cheerful",
		"delighted", "pleased", "satisfied", "content", "peaceful", "calm", "relaxed",
		"confident", "proud", "successful", "accomplished", "motivated", "inspired",
		"hopeful", "energetic", "vibrant", "beautiful", "perfect", "awesome",
	)

	negativeWords = wordSet(
		"sad", "angry", "frustrated", "disappointed", "worried", "anxious", "stressed",
		"depressed", "upset", "hurt", "pain", "terrible", "awful", "horrible", "bad",
		"negative", "pessimistic", "gloomy", "miserable", "unhappy", "lonely", "isolated",
		"overwhelmed", "exhausted", "tired", "drained", "hopeless", "defeated", "failed",
		"rejected", "abandoned", "worthless", "useless", "broken", "lost",
	)
)

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// IsPositive reports whether word is in the positive vocabulary.
func IsPositive(word string) bool { return positiveWords[word] }

// IsNegative reports whether word is in the negative vocabulary.
func IsNegative(word string) bool { return negativeWords[word] }
