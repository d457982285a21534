package text

import (
	"strings"
	"unicode"
)

// isWordRune reports whether r can be part of a word. Apostrophe variants are
// included because Uzbek Latin spells o‘ and g‘ with them.
func isWordRune(r rune) bool {
	switch r {
	case '\'', '‘', '’', 'ʻ', 'ʼ', '`':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func lowerRunes(s string) []rune {
	r := []rune(s)
	for i := range r {
		r[i] = unicode.ToLower(r[i])
	}
	return r
}

// findWord returns the rune index of the first case-insensitive occurrence of
// phrase in hay at or after from that is bounded by non-word runes on both sides,
// or -1.
func findWord(hay, phrase []rune, from int) int {
	n, m := len(hay), len(phrase)
	if m == 0 {
		return -1
	}
	for i := from; i+m <= n; i++ {
		if !equalRunes(hay[i:i+m], phrase) {
			continue
		}
		if i > 0 && isWordRune(hay[i-1]) {
			continue
		}
		if i+m < n && isWordRune(hay[i+m]) {
			continue
		}
		return i
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ContainsWord reports whether phrase occurs in s as a whole word (or sequence of
// whole words), ignoring case. Letters of any script count as word characters, so
// it works for Cyrillic where regexp's \b does not.
func ContainsWord(s, phrase string) bool {
	return findWord(lowerRunes(s), lowerRunes(phrase), 0) >= 0
}

// CountWords returns how many entries of phrases occur in s as whole words.
func CountWords(s string, phrases []string) int {
	hay := lowerRunes(s)
	hits := 0
	for _, p := range phrases {
		if findWord(hay, lowerRunes(p), 0) >= 0 {
			hits++
		}
	}
	return hits
}

// CountSubstrings returns how many entries of needles are substrings of s.
// s is expected to be normalised already.
func CountSubstrings(s string, needles []string) int {
	hits := 0
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			hits++
		}
	}
	return hits
}

// RemoveWords deletes every whole-word, case-insensitive occurrence of each phrase
// from s and tidies the separators left behind: repeated spaces collapse, and
// leading commas, colons, semicolons and dashes are dropped.
func RemoveWords(s string, phrases []string) string {
	orig := []rune(s)
	low := lowerRunes(s)
	drop := make([]bool, len(orig))

	removed := false
	for _, p := range phrases {
		pr := lowerRunes(p)
		for i := findWord(low, pr, 0); i >= 0; i = findWord(low, pr, i+len(pr)) {
			for j := i; j < i+len(pr); j++ {
				drop[j] = true
			}
			removed = true
		}
	}
	if !removed {
		return s
	}

	var b strings.Builder
	for i, r := range orig {
		if !drop[i] {
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i := range lines {
		lines[i] = tidySeparators(normalizeLineWhitespace(lines[i]))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// tidySeparators removes the punctuation a deleted leading word leaves behind,
// e.g. "Salom, do‘stim" -> ", do‘stim" -> "do‘stim", and the space a deleted
// word leaves before punctuation, e.g. "Hi there , friend".
func tidySeparators(line string) string {
	line = strings.TrimLeftFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ':' || r == '-' || r == '—' || r == '!' || unicode.IsSpace(r)
	})
	for _, p := range []string{" ,", " !", " .", " ?"} {
		line = strings.ReplaceAll(line, p, p[1:])
	}
	return line
}
