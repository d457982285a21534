package handlers

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf16"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/youngmea/airo/internal/dialogue"
)

// maxMessageUnits is Telegram's limit for one text message, in UTF-16 code units.
const maxMessageUnits = 4096

// inbound converts a Telegram message into the dialogue input.
func inbound(msg *models.Message, text string) dialogue.Inbound {
	return dialogue.Inbound{
		UserID:      msg.From.ID,
		DisplayName: msg.From.FirstName,
		Text:        text,
	}
}

// commandPayload returns whatever follows the command word, e.g. "foo" for "/start foo".
func commandPayload(text string) string {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// splitMessage cuts text into pieces Telegram accepts, preferring line breaks.
// limit counts UTF-16 code units, the unit Telegram measures message length in.
func splitMessage(text string, limit int) []string {
	if utf16Len(text) <= limit {
		return []string{text}
	}

	runes := []rune(text)
	var parts []string
	for len(runes) > 0 {
		units, end, lineBreak := 0, 0, 0
		for end < len(runes) {
			n := max(utf16.RuneLen(runes[end]), 1)
			if units+n > limit {
				break
			}
			units += n
			end++
			if runes[end-1] == '\n' && units > limit/2 {
				lineBreak = end
			}
		}
		if end == len(runes) {
			parts = append(parts, string(runes))
			break
		}

		cut := max(end, 1)
		if lineBreak > 0 {
			cut = lineBreak
		}
		parts = append(parts, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	return parts
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

// sendText sends text to chatID, split into as many messages as needed.
func sendText(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageUnits) {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: part}); err != nil {
			log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
			return
		}
	}
	log.DebugContext(ctx, "Successfully sent message", "chat_id", chatID)
}
