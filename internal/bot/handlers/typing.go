package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const defaultTypingInterval = 4 * time.Second

// startTyping shows the typing indicator in chatID until the returned function
// is called. Telegram clears the indicator after about five seconds, so it is
// re-sent every interval. stop waits for the refresher goroutine to exit.
func startTyping(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = defaultTypingInterval
	}

	typingCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if _, err := b.SendChatAction(typingCtx, &bot.SendChatActionParams{ChatID: chatID, Action: models.ChatActionTyping}); err != nil {
				if typingCtx.Err() != nil {
					return
				}
				log.DebugContext(ctx, "Typing action failed", "error", err, "chat_id", chatID)
			}

			select {
			case <-typingCtx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
