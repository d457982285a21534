package dialogue

import "github.com/youngmea/airo/internal/classify"

// commandTexts holds the fixed command replies for one language.
type commandTexts struct {
	// start is a format string taking the user's display name.
	start        string
	anonymous    string
	help         string
	historyHead  string
	historyEmpty string
	historyError string
	historyUser  string
}

var texts = map[classify.Language]commandTexts{
	classify.Uzbek: {
		start:     "Assalomu alaykum, %s! 😊 Men AIRO, o‘zbek, rus va ingliz tillarida suhbatlashadigan aqlli botman. /help orqali buyruqlarni ko‘r yoki shunchaki gaplashamiz, do‘stim!",
		anonymous: "do‘stim",
		help: "Mavjud buyruqlar:\n" +
			"/start - Botni ishga tushirish\n" +
			"/help - Yordam ma’lumotlari\n" +
			"/joke - Hazil eshitish (o‘zbek, rus yoki ingliz tilida)\n" +
			"/history - Oxirgi suhbatlarni ko‘rish\n" +
			"O‘zbek, rus yoki ingliz tilida yoz, men mos javob beraman! 😎",
		historyHead:  "So‘nggi suhbatlaring:\n",
		historyEmpty: "Hozircha suhbat tarixing yo‘q. Gaplashamizmi, do‘stim? 😊",
		historyError: "Kechirasan, suhbat tarixini hozir ololmadim. Birozdan keyin yana urinib ko‘r! 🙏",
		historyUser:  "Sen",
	},
	classify.Russian: {
		start:     "Здравствуй, %s! 😊 Я AIRO, умный бот, который говорит на узбекском, русском и английском. Загляни в /help или просто давай поболтаем, друг!",
		anonymous: "друг",
		help: "Доступные команды:\n" +
			"/start - Запустить бота\n" +
			"/help - Справка\n" +
			"/joke - Послушать шутку (на узбекском, русском или английском)\n" +
			"/history - Последние разговоры\n" +
			"Пиши на узбекском, русском или английском, я отвечу как надо! 😎",
		historyHead:  "Твои последние разговоры:\n",
		historyEmpty: "Пока у тебя нет истории разговоров. Поболтаем, друг? 😊",
		historyError: "Извини, сейчас не получилось загрузить историю. Попробуй чуть позже! 🙏",
		historyUser:  "Ты",
	},
	classify.English: {
		start:     "Hello, %s! 😊 I'm AIRO, a smart bot that chats in Uzbek, Russian and English. Check /help for commands or let's just talk, buddy!",
		anonymous: "buddy",
		help: "Available commands:\n" +
			"/start - Start the bot\n" +
			"/help - Show help\n" +
			"/joke - Hear a joke (in Uzbek, Russian or English)\n" +
			"/history - See recent conversations\n" +
			"Write in Uzbek, Russian or English and I'll answer in kind! 😎",
		historyHead:  "Your recent conversations:\n",
		historyEmpty: "You don't have any conversation history yet. Shall we chat, buddy? 😊",
		historyError: "Sorry, I couldn't load your history right now. Try again in a bit! 🙏",
		historyUser:  "You",
	},
}

func textsFor(lang classify.Language) commandTexts {
	if t, ok := texts[lang]; ok {
		return t
	}
	return texts[classify.DefaultLanguage]
}
