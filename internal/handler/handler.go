// TelegramHandler encapsulates dependencies for handling updates.
package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/harryl99/nyt-rankbot/internal/repository"
)

// BotAPI is the slice of *tgbotapi.BotAPI the handler uses. Tests substitute
// a fake.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMembersCount(config tgbotapi.ChatMemberCountConfig) (int, error)
}

type TelegramHandler struct {
	Repo *repository.ScoreRepository
	Bot  BotAPI
	Log  *zap.Logger
}

// NewTelegramHandler constructs a new handler instance.
func NewTelegramHandler(r *repository.ScoreRepository, bot BotAPI, log *zap.Logger) *TelegramHandler {
	return &TelegramHandler{Repo: r, Bot: bot, Log: log}
}
