package text_test

import (
	"testing"

	"github.com/youngmea/airo/internal/text"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "only whitespace", input: "  \t\n ", expected: ""},
		{name: "simple text", input: "hello world", expected: "hello world"},
		{name: "multiple spaces", input: "hello   world", expected: "hello world"},
		{name: "crlf line endings", input: "one\r\ntwo\rthree", expected: "one\ntwo\nthree"},
		{name: "excessive newlines", input: "one\n\n\n\ntwo", expected: "one\n\ntwo"},
		{name: "zero width space", input: "hello\u200bworld", expected: "hello world"},
		{name: "byte order mark", input: "\ufeffhello", expected: "hello"},
		{name: "control characters", input: "hello\x00\x07world", expected: "hello world"},
		{name: "cyrillic preserved", input: "  Привет,   друг  ", expected: "Привет, друг"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := text.Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		s      string
		phrase string
		want   bool
	}{
		{name: "exact", s: "salom", phrase: "salom", want: true},
		{name: "case insensitive", s: "SALOM do'stim", phrase: "salom", want: true},
		{name: "inside a longer word", s: "chiroyli", phrase: "hi", want: false},
		{name: "multi word phrase", s: "hey, how are you today", phrase: "how are you", want: true},
		{name: "cyrillic boundary", s: "Привет!", phrase: "привет", want: true},
		{name: "cyrillic inside word", s: "приветствую", phrase: "привет", want: false},
		{name: "apostrophe is part of word", s: "what's up", phrase: "what", want: false},
		{name: "empty phrase", s: "anything", phrase: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := text.ContainsWord(tt.s, tt.phrase); got != tt.want {
				t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.s, tt.phrase, got, tt.want)
			}
		})
	}
}

func TestRemoveWords(t *testing.T) {
	t.Parallel()

	greetings := []string{"salom", "assalomu alaykum", "hello", "привет"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "nothing to remove", input: "Zo'r, davom etamiz.", expected: "Zo'r, davom etamiz."},
		{name: "leading greeting with comma", input: "Salom, do'stim! Qalaysan?", expected: "do'stim! Qalaysan?"},
		{name: "multi word greeting", input: "Assalomu alaykum do'stim.", expected: "do'stim."},
		{name: "greeting in the middle", input: "Well hello there.", expected: "Well there."},
		{name: "repeated greeting", input: "hello hello friend", expected: "friend"},
		{name: "cyrillic greeting", input: "Привет! Как дела?", expected: "Как дела?"},
		{name: "word containing greeting untouched", input: "salomatlik muhim.", expected: "salomatlik muhim."},
		{name: "only a greeting", input: "Hello!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := text.RemoveWords(tt.input, greetings); got != tt.expected {
				t.Errorf("RemoveWords() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	if got := text.WordCount("  one two\tthree\nfour "); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
	if got := text.WordCount(""); got != 0 {
		t.Errorf("WordCount(\"\") = %d, want 0", got)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	if got := text.Preview("короткий", 20); got != "короткий" {
		t.Errorf("Preview() = %q, want unchanged", got)
	}
	if got := text.Preview("абвгдежзий", 6); got != "абв..." {
		t.Errorf("Preview() = %q, want %q", got, "абв...")
	}
}
