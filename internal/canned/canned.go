// Package canned holds the deterministic replies that bypass the generation
// service: trigger-phrase responses and the joke lists.
package canned

import (
	"math/rand/v2"
	"strings"

	"github.com/youngmea/airo/internal/classify"
	"github.com/youngmea/airo/internal/text"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

// Match is a successful canned lookup.
type Match struct {
	Trigger  string
	Response string
}

// Matcher looks up canned responses and jokes. The zero value is not usable;
// build one with New.
type Matcher struct {
	responses map[classify.Language][]entry
	jokes     map[classify.Language][]string
	pick      Picker
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithPicker replaces the random source used to choose jokes.
func WithPicker(p Picker) Option {
	return func(m *Matcher) {
		if p != nil {
			m.pick = p
		}
	}
}

// New returns a Matcher over the built-in tables.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		responses: responses,
		jokes:     jokes,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match returns the response of the first trigger, in declaration order, that is
// a substring of the lower-cased message. Containment is plain substring search,
// not token matching.
func (m *Matcher) Match(message string, lang classify.Language) (Match, bool) {
	normalized := text.Normalize(message)
	for _, e := range m.responses[lang] {
		if strings.Contains(normalized, e.trigger) {
			return Match{Trigger: e.trigger, Response: m.render(e.template, lang)}, true
		}
	}
	return Match{}, false
}

// Joke returns one random joke in lang, falling back to the default language's list.
func (m *Matcher) Joke(lang classify.Language) string {
	list := m.jokes[lang]
	if len(list) == 0 {
		list = m.jokes[classify.DefaultLanguage]
	}
	if len(list) == 0 {
		return ""
	}
	return list[m.pick(len(list))]
}

func (m *Matcher) render(template string, lang classify.Language) string {
	if !strings.Contains(template, JokePlaceholder) {
		return template
	}
	return strings.Replace(template, JokePlaceholder, m.Joke(lang), 1)
}
