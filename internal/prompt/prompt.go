// Package prompt assembles the text block sent to the generation backend.
package prompt

import (
	"fmt"
	"strings"

	"github.com/youngmea/airo/internal/classify"
)

// Turn is one earlier exchange shown to the model as context.
type Turn struct {
	Message  string
	Response string
	Language classify.Language
}

// Input is everything the composer needs for one exchange.
// History arrives newest first, the way the ledger returns it.
type Input struct {
	Language classify.Language
	Emotion  classify.Emotion
	Tier     classify.LengthTier
	History  []Turn
	Message  string
}

// Compose renders the prompt for in. It is pure: equal inputs give equal output.
// Unknown tags fall back to the default language and the neutral tone.
func Compose(in Input) string {
	lang := in.Language
	sc, ok := scripts[lang]
	if !ok {
		lang = classify.DefaultLanguage
		sc = scripts[lang]
	}

	tone, ok := tones[lang][in.Emotion]
	if !ok {
		tone = tones[lang][classify.Neutral]
	}

	var b strings.Builder
	fmt.Fprintf(&b, sc.persona, languageNames[lang][lang])
	b.WriteString("\n")
	b.WriteString(sc.noGreeting)
	b.WriteString("\n")
	b.WriteString(tone)
	b.WriteString("\n")
	fmt.Fprintf(&b, sc.length, in.Tier.Sentences())
	b.WriteString("\n\n")

	if len(in.History) > 0 {
		b.WriteString(sc.historyHead)
		b.WriteString("\n")
		for i := len(in.History) - 1; i >= 0; i-- {
			turn := in.History[i]
			fmt.Fprintf(&b, "%s (%s): %s\n%s: %s\n", sc.userLabel, turn.Language, turn.Message, sc.botLabel, turn.Response)
		}
		b.WriteString("\n")
	}

	b.WriteString(sc.messageHead)
	b.WriteString(" ")
	b.WriteString(in.Message)
	return b.String()
}
