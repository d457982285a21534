package prompt

import (
	"strings"
	"testing"

	"github.com/youngmea/airo/internal/classify"
)

func TestComposeOrder(t *testing.T) {
	t.Parallel()

	in := Input{
		Language: classify.English,
		Emotion:  classify.Sad,
		Tier:     classify.Medium,
		History: []Turn{
			{Message: "newest question", Response: "newest answer", Language: classify.English},
			{Message: "oldest question", Response: "oldest answer", Language: classify.Russian},
		},
		Message: "what should I do now",
	}
	got := Compose(in)

	parts := []string{
		"You are AIRO",
		"never greet the user",
		tones[classify.English][classify.Sad],
		"Keep your answer to 2-3 sentences.",
		"Previous conversation:",
		"User (ru): oldest question\nAIRO: oldest answer",
		"User (en): newest question\nAIRO: newest answer",
		"User message: what should I do now",
	}
	last := -1
	for _, p := range parts {
		idx := strings.Index(got, p)
		if idx < 0 {
			t.Fatalf("Compose() missing %q in:\n%s", p, got)
		}
		if idx <= last {
			t.Errorf("Compose() part %q out of order", p)
		}
		last = idx
	}

	if !strings.HasSuffix(got, in.Message) {
		t.Errorf("Compose() should end with the current message, got %q", got)
	}
}

func TestComposeIsPure(t *testing.T) {
	t.Parallel()

	in := Input{Language: classify.Uzbek, Emotion: classify.Funny, Tier: classify.Short, Message: "hazil"}
	if a, b := Compose(in), Compose(in); a != b {
		t.Errorf("Compose() not deterministic:\n%q\n%q", a, b)
	}
}

func TestComposePerLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang    classify.Language
		persona string
		length  string
	}{
		{lang: classify.Uzbek, persona: "o‘zbek tilida", length: "4-5 gapdan"},
		{lang: classify.Russian, persona: "на языке русском", length: "4-5 предложений"},
		{lang: classify.English, persona: "speaks English", length: "4-5 sentences"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			t.Parallel()
			got := Compose(Input{Language: tt.lang, Emotion: classify.Neutral, Tier: classify.Long, Message: "x"})
			if !strings.Contains(got, tt.persona) {
				t.Errorf("Compose(%s) missing persona %q", tt.lang, tt.persona)
			}
			if !strings.Contains(got, tt.length) {
				t.Errorf("Compose(%s) missing length directive %q", tt.lang, tt.length)
			}
			if !strings.Contains(got, tones[tt.lang][classify.Neutral]) {
				t.Errorf("Compose(%s) missing neutral tone", tt.lang)
			}
		})
	}
}

func TestComposeWithoutHistory(t *testing.T) {
	t.Parallel()

	got := Compose(Input{Language: classify.Uzbek, Emotion: classify.Neutral, Tier: classify.Short, Message: "nima gap"})
	if strings.Contains(got, scripts[classify.Uzbek].historyHead) {
		t.Errorf("Compose() rendered a history header with no history")
	}
}

func TestComposeUnknownTagsFallBack(t *testing.T) {
	t.Parallel()

	got := Compose(Input{Language: "de", Emotion: "angry", Tier: classify.Short, Message: "hallo"})
	if !strings.Contains(got, tones[classify.Uzbek][classify.Neutral]) {
		t.Errorf("Compose() with unknown tags should use the default language neutral tone, got %q", got)
	}
}

func TestTablesComplete(t *testing.T) {
	t.Parallel()

	for _, lang := range classify.Languages {
		if _, ok := scripts[lang]; !ok {
			t.Errorf("scripts missing %s", lang)
		}
		for _, emo := range classify.Emotions {
			if tones[lang][emo] == "" {
				t.Errorf("tones missing %s/%s", lang, emo)
			}
		}
		for _, other := range classify.Languages {
			if languageNames[lang][other] == "" {
				t.Errorf("languageNames missing %s/%s", lang, other)
			}
		}
	}
}
