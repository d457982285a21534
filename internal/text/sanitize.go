package text

import (
	"strings"
	"unicode"
)

// normalizeLineWhitespace collapses consecutive whitespace into a single space and
// trims the line.
func normalizeLineWhitespace(line string) string {
	var b strings.Builder

	var space bool

	for _, r := range line {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteRune(' ')

				space = true
			}
		} else {
			b.WriteRune(r)

			space = false
		}
	}

	return strings.TrimSpace(b.String())
}

// Sanitize cleans generated text before it is shown to a user:
//
//  1. Line endings are normalised to LF.
//  2. Invisible Unicode format characters are removed and exotic spaces become plain spaces.
//  3. ASCII control characters are replaced by spaces.
//  4. Whitespace inside each line is collapsed.
//  5. Runs of three or more newlines become a single blank line.
//
// Unlike the model call itself Sanitize never fails; an all-whitespace input yields "".
func Sanitize(input string) string {
	s := strings.ReplaceAll(input, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = unicodeReplacer.Replace(s)
	s = controlCharsRegex.ReplaceAllString(s, " ")

	parts := strings.Split(s, "\n")
	for i := range parts {
		parts[i] = normalizeLineWhitespace(parts[i])
	}

	s = strings.Join(parts, "\n")
	s = multipleNewlinesRegex.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// Normalize lower-cases and trims s. Classifiers and matchers work on this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Preview shortens s to at most maxRunes runes for log output.
func Preview(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return "..."
	}
	return string(r[:maxRunes-3]) + "..."
}
