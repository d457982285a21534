// Package handlers contains the Telegram command and message handlers, their
// registration table and middleware.
package handlers

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RequireSender creates a middleware that drops updates without a message or a
// sender (channel posts, service updates). Handlers behind it can rely on
// update.Message and update.Message.From being set.
func RequireSender(deps HandlerDeps) tgbot.Middleware {
	return func(next tgbot.HandlerFunc) tgbot.HandlerFunc {
		return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
			if update.Message == nil || update.Message.From == nil {
				deps.Logger.DebugContext(ctx, "Ignoring update without message or sender",
					"middleware", "RequireSender", "update_id", update.ID)
				return
			}
			next(ctx, bot, update)
		}
	}
}
