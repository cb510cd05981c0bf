// internal/util/bot.go
package util

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the sending half of tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// SafeSend sends a message and logs the error if one occurs.
func SafeSend(log *zap.Logger, bot Sender, msg tgbotapi.MessageConfig) {
	if _, err := bot.Send(msg); err != nil {
		log.Warn("failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
// Telegram caps chat descriptions at 255 characters.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
