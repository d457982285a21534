package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewHistoryHandler returns a handler for the /history command.
func NewHistoryHandler(deps HandlerDeps) bot.HandlerFunc {
	return historyHandler{deps}.Handle
}

type historyHandler struct {
	deps HandlerDeps
}

func (h historyHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "history")
	msg := update.Message

	log.InfoContext(ctx, "Handling /history command", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	sendText(ctx, b, log, msg.Chat.ID, h.deps.Conversation.History(ctx, msg.From.ID))
}
