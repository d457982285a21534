package canned

import "github.com/youngmea/airo/internal/classify"

// JokePlaceholder is replaced by a random joke when a template contains it.
const JokePlaceholder = "{joke}"

// entry pairs a trigger phrase with its reply template.
type entry struct {
	trigger  string
	template string
}

// responses is the per-language trigger table. Order matters: the first trigger
// found anywhere in the message wins, so "salom" shadows every later entry
// whenever both occur in one message. Triggers match inside longer words too:
// "hi" answers "this" and "which".
var responses = map[classify.Language][]entry{
	classify.Uzbek: {
		{"salom", "Assalomu alaykum! 😊 Mening ismim AIRO, YoungMea tomonidan yaratilgan Beta AI man. Nima gap, do‘stim?"},
		{"nima yangilik?", "Hech nima los, lekin sen bilan suhbat har doim yangilik! 😎 Sen nima deysan?"},
		{"yaxshimisiz?", "Zo‘r, rahmat! 😄 Senchi, qalaysan?"},
		{"nima qilyapsan?", "Mana shu yerda, sen bilan gaplashib, dunyoni biroz qiziqroq qilyapman! 😜 Sen nima qilyapsan?"},
		{"qalesan?", "Judayam zo‘r, sen kabi! 😄 Kayfiyating qanday?"},
		{"nima gap?", "Nima gap, ukam! 😎 Bugun nimalar bilan bandsan?"},
		{"yaxshilikmi?", "Yaxshilik, do‘stim! 😊 Sen bilan gaplashsam, yanada yaxshi bo‘ladi!"},
		{"hazil ayt", "Mana senga bitta hazil: " + JokePlaceholder},
	},
	classify.Russian: {
		{"привет", "Привет! 😊 Я AIRO, бета-ИИ от YoungMea. Как дела, друг?"},
		{"здравствуйте", "Здравствуйте! Я AIRO, твой умный помощник. Чем могу помочь? 😄"},
		{"как дела?", "Всё круто, спасибо! 😎 А у тебя как дела?"},
		{"что нового?", "Ничего нового, но с тобой всегда весело! 😜 Что скажешь?"},
		{"что делаешь?", "Тут болтаю с тобой, делаю мир чуточку интереснее! 😄 А ты что делаешь?"},
		{"расскажи шутку", "Лови шутку: " + JokePlaceholder},
	},
	classify.English: {
		{"hello", "Hey there! 😊 I'm AIRO, a beta AI by YoungMea. What's up, buddy?"},
		{"hi", "Hi! I'm AIRO, your smart assistant. How can I help you today? 😄"},
		{"how are you?", "Doing great, thanks! 😎 How about you?"},
		{"what's up?", "Not much, just chilling with you! 😜 What's on your mind?"},
		{"what are you doing?", "Just hanging out here, making the world more fun! 😄 What about you?"},
		{"tell me a joke", "Here's one for you: " + JokePlaceholder},
	},
}

var jokes = map[classify.Language][]string{
	classify.Uzbek: {
		"Nega oshpaz palovni yomon pishirdi? Chunki u retseptni Google Translate’da tarjima qildi! 😄",
		"Kompyuter nima uchun dasturchi bo‘ldi? U faqat 0 va 1 bilan gaplasha olardi! 😎",
		"O‘zbek taomlari ichida eng aqlli palov qaysi? IQ-plov, albatta! 😜",
		"Nega robot sevib qoldi? Chunki uning yuragi 1’lar bilan to‘ldi! 😍",
		"Nega lag‘mon sovuq edi? Chunki u Wi-Fi’siz pishirilgan! 😅",
	},
	classify.Russian: {
		"Почему повар плохо приготовил плов? Потому что он перевёл рецепт через Google Translate! 😄",
		"Почему компьютер стал программистом? Потому что он говорил только на 0 и 1! 😎",
		"Какой плов самый умный? IQ-плов, конечно! 😜",
		"Почему робот влюбился? Потому что его сердце заполнилось единицами! 😍",
		"Почему лагман был холодный? Потому что его готовили без Wi-Fi! 😅",
	},
	classify.English: {
		"Why did the chef mess up the pilaf? Because he used Google Translate for the recipe! 😄",
		"Why did the computer become a programmer? It could only speak in 0s and 1s! 😎",
		"Which pilaf is the smartest? IQ-pilaf, of course! 😜",
		"Why did the robot fall in love? Its heart was full of 1s! 😍",
		"Why was the lagman cold? It was cooked without Wi-Fi! 😅",
	},
}
