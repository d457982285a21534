package reply

import "github.com/youngmea/airo/internal/classify"

// greetings is the block-list stripped from generated text. Longer phrases come
// first so "assalomu alaykum" goes before "assalom" gets a chance to split it.
var greetings = map[classify.Language][]string{
	classify.Uzbek:   {"assalomu alaykum", "assalom", "salom"},
	classify.Russian: {"здравствуйте", "здравствуй", "привет"},
	classify.English: {"good morning", "hello", "hey", "hi"},
}

// closingTags maps language → emotion to the sentence appended when generated
// text stops without terminal punctuation. Every entry ends in '.', '!' or '?'.
var closingTags = map[classify.Language]map[classify.Emotion]string{
	classify.Uzbek: {
		classify.Funny:   "😄 Yana kulamizmi, do‘stim?",
		classify.Sad:     "💙 Men doim shu yerdaman, do‘stim.",
		classify.Neutral: "😊 Yana nima gaplar?",
	},
	classify.Russian: {
		classify.Funny:   "😄 Ещё посмеёмся, друг?",
		classify.Sad:     "💙 Я всегда рядом, друг.",
		classify.Neutral: "😊 Что ещё расскажешь?",
	},
	classify.English: {
		classify.Funny:   "😄 Want another laugh, buddy?",
		classify.Sad:     "💙 I'm always here for you, buddy.",
		classify.Neutral: "😊 What else is on your mind?",
	},
}

// fallbacks maps language → emotion to the apology sent when generation fails.
var fallbacks = map[classify.Language]map[classify.Emotion]string{
	classify.Uzbek: {
		classify.Funny:   "Voy, miyam bir zumga qotib qoldi! 😅 Keyinroq yana urinib ko‘ramiz, yaxshi?",
		classify.Sad:     "Kechirasiz, hozir javob bera olmadim. 💙 Biroz keyin yana yozing, men shu yerdaman.",
		classify.Neutral: "Nimadir xato bo‘ldi, ukam. 😅 Keyinroq yana urinib ko‘ramiz, yaxshi?",
	},
	classify.Russian: {
		classify.Funny:   "Ой, мой мозг на секунду завис! 😅 Попробуем ещё раз чуть позже?",
		classify.Sad:     "Извини, сейчас не получилось ответить. 💙 Напиши мне чуть позже, я рядом.",
		classify.Neutral: "Что-то пошло не так, друг. 😅 Попробуем ещё раз позже, хорошо?",
	},
	classify.English: {
		classify.Funny:   "Oops, my brain just froze for a second! 😅 Shall we try again in a bit?",
		classify.Sad:     "Sorry, I couldn't answer right now. 💙 Write to me again a little later, I'm here.",
		classify.Neutral: "Something went wrong, buddy. 😅 Let's try again later, okay?",
	},
}
