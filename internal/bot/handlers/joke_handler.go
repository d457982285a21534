package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewJokeHandler returns a handler for the /joke command.
func NewJokeHandler(deps HandlerDeps) bot.HandlerFunc {
	return jokeHandler{deps}.Handle
}

type jokeHandler struct {
	deps HandlerDeps
}

func (h jokeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "joke")
	msg := update.Message

	log.InfoContext(ctx, "Handling /joke command", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	sendText(ctx, b, log, msg.Chat.ID, h.deps.Conversation.Joke(ctx, msg.From.ID))
}
