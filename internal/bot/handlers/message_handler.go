package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewMessageHandler returns the default handler: every text message that no
// command handler claimed goes through the dialogue pipeline. Unknown commands
// get the help text so no command goes unanswered.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return RequireSender(deps)(messageHandler{deps}.Handle)
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")
	msg := update.Message

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		log.DebugContext(ctx, "Ignoring non-text message", "chat_id", msg.Chat.ID, "message_id", msg.ID)
		return
	}

	if strings.HasPrefix(text, "/") {
		log.InfoContext(ctx, "Unknown command, sending help", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)
		sendText(ctx, b, log, msg.Chat.ID, h.deps.Conversation.Help(ctx, msg.From.ID))
		return
	}

	interval := defaultTypingInterval
	if h.deps.Config != nil {
		interval = h.deps.Config.Telegram.TypingInterval
	}
	stopTyping := startTyping(ctx, b, log, msg.Chat.ID, interval)
	response := h.deps.Conversation.Reply(ctx, inbound(msg, text))
	stopTyping()

	sendText(ctx, b, log, msg.Chat.ID, response)
}
