package classify

import (
	"strings"

	"github.com/youngmea/airo/internal/text"
)

var (
	funnyIndicators = []string{
		"haha", "hehe", "lol", "lmao", "xaxa", "hihi", "ха-ха", "хаха", "хехе", "ржу",
		"joke", "funny", "hazil", "kulgili", "kulib", "шутк", "смешн", "прикол",
		"😂", "🤣", "😄", "😆", "😜", "😹",
	}
	sadIndicators = []string{
		"sad", "depressed", "unhappy", "crying", "lonely", "xafa", "g'amgin", "g‘amgin",
		"yig'la", "yig‘la", "qayg'u", "qayg‘u", "грустн", "печаль", "плачу", "тоск", "одиноко",
		"😢", "😭", "💔", "😞", "😔",
	}
	// secondarySadIndicators are weaker signals that only count in long messages.
	secondarySadIndicators = []string{
		"tired", "problem", "hard", "bad", "charchadim", "muammo", "qiyin", "yomon",
		"устал", "проблем", "тяжело", "плохо",
	}
)

const (
	shortExclaimMaxWords = 5
	longLamentMinWords   = 11
)

// DetectEmotion tags s as funny, sad or neutral:
//
//  1. a funny indicator, or a short (<= 5 words) message containing "!" -> funny
//  2. a sad indicator, or a long (> 10 words) message with a weaker sad word -> sad
//  3. otherwise neutral
//
// Rule 1 is checked before rule 2, so "I am so sad!" is funny. That tie-break is
// intentional: short exclamations read as playful more often than not.
func DetectEmotion(s string) Emotion {
	normalized := text.Normalize(s)
	words := text.WordCount(normalized)

	if text.CountSubstrings(normalized, funnyIndicators) > 0 ||
		(words <= shortExclaimMaxWords && strings.Contains(normalized, "!")) {
		return Funny
	}

	if text.CountSubstrings(normalized, sadIndicators) > 0 ||
		(words >= longLamentMinWords && text.CountSubstrings(normalized, secondarySadIndicators) > 0) {
		return Sad
	}

	return Neutral
}
