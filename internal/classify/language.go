package classify

import (
	"unicode"

	"github.com/youngmea/airo/internal/text"
)

// Lexicons hold words and short phrases typical for each language. Entries are
// matched as whole words, so "hi" does not fire on "chiroyli".
var (
	uzbekLexicon = []string{
		"salom", "assalomu alaykum", "nima", "nima gap", "yaxshimisiz", "qalesan", "qalaysan",
		"yaxshilikmi", "rahmat", "ha", "yo'q", "yo‘q", "men", "sen", "siz", "bormi", "qanday",
		"nega", "qayerda", "do'stim", "do‘stim", "ukam", "zo'r", "zo‘r", "nimalar", "hazil",
	}
	russianLexicon = []string{
		"привет", "здравствуйте", "как дела", "что нового", "спасибо", "да", "нет", "я", "ты",
		"вы", "что", "как", "почему", "где", "хорошо", "пока", "друг", "шутка",
	}
	englishLexicon = []string{
		"hello", "hi", "hey", "how are you", "what's up", "thanks", "thank you", "yes", "no",
		"the", "is", "are", "you", "what", "why", "where", "good", "please", "joke",
	}
)

// scriptCounts returns the number of Cyrillic and Latin letters in s.
func scriptCounts(s string) (cyrillic, latin int) {
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	return cyrillic, latin
}

// DetectLanguage tags s as uz, ru or en. Rules are evaluated in order and the
// first match wins:
//
//  1. more Cyrillic than Latin and a Russian lexicon hit -> ru
//  2. more Latin than Cyrillic and an English lexicon hit -> en
//  3. an Uzbek lexicon hit, or Latin letters with no Cyrillic at all -> uz
//  4. otherwise uz
func DetectLanguage(s string) Language {
	normalized := text.Normalize(s)
	cyr, lat := scriptCounts(normalized)

	ruHits := text.CountWords(normalized, russianLexicon)
	enHits := text.CountWords(normalized, englishLexicon)
	uzHits := text.CountWords(normalized, uzbekLexicon)

	switch {
	case cyr > lat && ruHits > 0:
		return Russian
	case lat > cyr && enHits > 0:
		return English
	case uzHits > 0 || (lat > 0 && cyr == 0):
		return Uzbek
	default:
		return DefaultLanguage
	}
}
