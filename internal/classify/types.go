// Package classify implements the heuristics that tag an inbound message with a
// language, an emotional register and a response length tier. Every function here
// is total and pure: it always returns a value from its fixed enumeration.
package classify

// Language is one of the supported conversation languages.
type Language string

const (
	Uzbek   Language = "uz"
	Russian Language = "ru"
	English Language = "en"
)

// DefaultLanguage is used whenever nothing better is known.
const DefaultLanguage = Uzbek

// Languages lists every supported language in a stable order.
var Languages = []Language{Uzbek, Russian, English}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case Uzbek, Russian, English:
		return true
	}
	return false
}

// ParseLanguage maps a stored tag back to a Language, falling back to DefaultLanguage.
func ParseLanguage(s string) Language {
	if l := Language(s); l.Valid() {
		return l
	}
	return DefaultLanguage
}

// Emotion is the detected emotional register of a message.
type Emotion string

const (
	Funny   Emotion = "funny"
	Sad     Emotion = "sad"
	Neutral Emotion = "neutral"
)

// Emotions lists every emotion in a stable order.
var Emotions = []Emotion{Funny, Sad, Neutral}

// Valid reports whether e is a known emotion.
func (e Emotion) Valid() bool {
	switch e {
	case Funny, Sad, Neutral:
		return true
	}
	return false
}

// Result bundles the three tags computed for one message.
type Result struct {
	Language Language
	Emotion  Emotion
	Tier     LengthTier
}

// Classify runs all three classifiers on text.
func Classify(text string) Result {
	return Result{
		Language: DetectLanguage(text),
		Emotion:  DetectEmotion(text),
		Tier:     TierFor(text),
	}
}
