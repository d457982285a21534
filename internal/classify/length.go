package classify

import "github.com/youngmea/airo/internal/text"

// LengthTier buckets a message by word count and drives both the generation token
// budget and the sentence count requested from the model.
type LengthTier string

const (
	Short  LengthTier = "short"
	Medium LengthTier = "medium"
	Long   LengthTier = "long"
)

// Tiers lists every tier in a stable order.
var Tiers = []LengthTier{Short, Medium, Long}

const (
	shortMaxWords  = 5
	mediumMaxWords = 15
)

// TierFor returns short for up to 5 words, medium for up to 15, long otherwise.
func TierFor(s string) LengthTier {
	switch n := text.WordCount(s); {
	case n <= shortMaxWords:
		return Short
	case n <= mediumMaxWords:
		return Medium
	default:
		return Long
	}
}

// TokenBudget is the max_output_tokens value sent to the generation service.
func (t LengthTier) TokenBudget() int {
	switch t {
	case Short:
		return 100
	case Medium:
		return 200
	default:
		return 400
	}
}

// Sentences is the sentence range asked of the model, rendered verbatim in the prompt.
func (t LengthTier) Sentences() string {
	switch t {
	case Short:
		return "1-2"
	case Medium:
		return "2-3"
	default:
		return "4-5"
	}
}
