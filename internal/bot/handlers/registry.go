package handlers

import (
	"sort"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/youngmea/airo/internal/classify"
)

// RegisteredHandler represents a command handler with its menu description and middleware.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
	// Descriptions holds the command menu text per language.
	Descriptions map[classify.Language]string
}

// RegisterAllCommands initializes and returns a map of all available bot commands.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)
	mw := []tgbot.Middleware{RequireSender(deps)}

	command := func(name string, handler tgbot.HandlerFunc, descriptions map[classify.Language]string) {
		handlers["/"+name] = RegisteredHandler{
			HandlerType:  tgbot.HandlerTypeMessageText,
			Pattern:      name,
			Handler:      handler,
			Middleware:   mw,
			MatchType:    tgbot.MatchTypeCommandStartOnly,
			Descriptions: descriptions,
		}
	}

	command("start", NewStartHandler(deps), map[classify.Language]string{
		classify.Uzbek:   "Botni ishga tushirish",
		classify.Russian: "Запустить бота",
		classify.English: "Start the bot",
	})
	command("help", NewHelpHandler(deps), map[classify.Language]string{
		classify.Uzbek:   "Yordam ma’lumotlari",
		classify.Russian: "Справка",
		classify.English: "Show help",
	})
	command("joke", NewJokeHandler(deps), map[classify.Language]string{
		classify.Uzbek:   "Hazil eshitish",
		classify.Russian: "Послушать шутку",
		classify.English: "Hear a joke",
	})
	command("history", NewHistoryHandler(deps), map[classify.Language]string{
		classify.Uzbek:   "Oxirgi suhbatlarni ko‘rish",
		classify.Russian: "Последние разговоры",
		classify.English: "See recent conversations",
	})

	return handlers
}

// CommandMenus builds the bot command menus keyed by Telegram language code.
// The empty code is the default menu, shown in English.
func CommandMenus(registered map[string]RegisteredHandler) map[string][]models.BotCommand {
	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)

	menus := make(map[string][]models.BotCommand)
	for _, name := range names {
		h := registered[name]
		for _, lang := range classify.Languages {
			desc, ok := h.Descriptions[lang]
			if !ok {
				continue
			}
			menus[string(lang)] = append(menus[string(lang)], models.BotCommand{Command: h.Pattern, Description: desc})
			if lang == classify.English {
				menus[""] = append(menus[""], models.BotCommand{Command: h.Pattern, Description: desc})
			}
		}
	}
	return menus
}
