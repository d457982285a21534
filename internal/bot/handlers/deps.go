package handlers

import (
	"context"
	"log/slog"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/dialogue"
)

// Conversation is the dialogue surface the handlers drive.
type Conversation interface {
	Reply(ctx context.Context, in dialogue.Inbound) string
	Start(ctx context.Context, in dialogue.Inbound) string
	Help(ctx context.Context, userID int64) string
	Joke(ctx context.Context, userID int64) string
	History(ctx context.Context, userID int64) string
}

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger       *slog.Logger
	Config       *config.Config
	Conversation Conversation
}
