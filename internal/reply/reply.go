// Package reply post-processes generated text before it is sent to the user.
package reply

import (
	"strings"

	"github.com/youngmea/airo/internal/classify"
	"github.com/youngmea/airo/internal/text"
)

// Finalize strips greetings from generated text, cleans it up and makes sure it
// ends in terminal punctuation by appending the closing tag for (lang, emotion).
// The result is never empty.
func Finalize(generated string, lang classify.Language, emotion classify.Emotion) string {
	lang, emotion = normalizeTags(lang, emotion)

	out := strings.TrimSpace(generated)
	out = text.RemoveWords(out, greetings[lang])
	out = text.Sanitize(out)

	if EndsWithTerminal(out) {
		return out
	}

	tag := closingTags[lang][emotion]
	if out == "" {
		return tag
	}
	return out + " " + tag
}

// Fallback returns the fixed apology used when the generation call fails.
func Fallback(lang classify.Language, emotion classify.Emotion) string {
	lang, emotion = normalizeTags(lang, emotion)
	return fallbacks[lang][emotion]
}

// EndsWithTerminal reports whether s ends in '.', '!' or '?'.
func EndsWithTerminal(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

func normalizeTags(lang classify.Language, emotion classify.Emotion) (classify.Language, classify.Emotion) {
	if !lang.Valid() {
		lang = classify.DefaultLanguage
	}
	if !emotion.Valid() {
		emotion = classify.Neutral
	}
	return lang, emotion
}
