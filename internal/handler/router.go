// internal/handler/router.go
package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/harryl99/nyt-rankbot/internal/domain"
	"github.com/harryl99/nyt-rankbot/internal/parser"
	"github.com/harryl99/nyt-rankbot/internal/scoreboard"
	"github.com/harryl99/nyt-rankbot/internal/util"
)

// HandleUpdate routes one incoming update. Plain text goes through the
// share-text parser; commands are dispatched by name. Everything else,
// including commands this bot does not own, is ignored without a reply.
func (h *TelegramHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	msg := update.Message

	if msg.IsCommand() {
		switch msg.Command() {
		case "scoreboard":
			h.handleScoreboard(ctx, msg)
		case "clear":
			h.handleClear(ctx, msg)
		case "add":
			h.handleAdd(ctx, msg)
		}
		return
	}

	h.handleShare(ctx, msg)
}

// handleShare records a recognised share-text for today. A repeated share
// for the same game overwrites the earlier score.
func (h *TelegramHandler) handleShare(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	res, ok := parser.Match(msg.Text)
	if !ok {
		return
	}

	entry := domain.ScoreEntry{
		Day:    domain.Today(),
		Player: msg.From.FirstName,
		Game:   res.Game,
		Score:  res.Score,
	}
	if err := h.Repo.Record(ctx, entry); err != nil {
		h.Log.Error("failed to record score",
			zap.String("player", entry.Player),
			zap.String("game", string(entry.Game)),
			zap.Error(err))
		return
	}
	h.Log.Info("score recorded",
		zap.String("player", entry.Player),
		zap.String("game", string(entry.Game)),
		zap.Int("score", entry.Score))

	h.refreshDescription(ctx, msg.Chat.ID)
	h.announceIfComplete(ctx, msg)
}

func (h *TelegramHandler) handleScoreboard(ctx context.Context, msg *tgbotapi.Message) {
	text, err := h.scoreboardMessage(ctx)
	if err != nil {
		h.Log.Error("failed to build scoreboard", zap.Error(err))
		return
	}
	util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID, text))
}

func (h *TelegramHandler) handleClear(ctx context.Context, msg *tgbotapi.Message) {
	today := domain.Today()
	player := strings.TrimSpace(msg.CommandArguments())

	removed, err := h.Repo.Clear(ctx, today, player)
	if err != nil {
		h.Log.Error("failed to clear scores", zap.String("day", today), zap.Error(err))
		return
	}
	h.Log.Info("scores cleared",
		zap.String("day", today),
		zap.String("player", player),
		zap.Int64("rows", removed))

	reply := fmt.Sprintf("Scoreboard cleared for %s 🗑️!", today)
	if player != "" {
		reply = fmt.Sprintf("Scoreboard cleared for %s and player %s 🗑️!", today, player)
	}
	util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID, reply))
}

// handleAdd records a score on someone's behalf, e.g. when a share was
// posted before the bot joined the chat. Uses the same upsert semantics
// as handleShare.
func (h *TelegramHandler) handleAdd(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 3 {
		util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "Usage: /add <player> <game> <score>"))
		return
	}

	game, err := domain.ParseGame(args[1])
	if err != nil {
		util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID,
			fmt.Sprintf("Unknown game %q. Try Connections, Mini or Wordle.", args[1])))
		return
	}
	score, err := strconv.Atoi(args[2])
	if err != nil {
		util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "Score must be a number."))
		return
	}

	entry := domain.ScoreEntry{Day: domain.Today(), Player: args[0], Game: game, Score: score}
	if err := h.Repo.Record(ctx, entry); err != nil {
		h.Log.Error("failed to record manual score", zap.Error(err))
		return
	}
	util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID,
		fmt.Sprintf("Score added for %s in %s: %d", entry.Player, entry.Game, entry.Score)))
}

// refreshDescription keeps the chat description showing the live
// scoreboard. Private chats have no description to set, so failures only
// reach the debug log.
func (h *TelegramHandler) refreshDescription(ctx context.Context, chatID int64) {
	text, err := h.scoreboardMessage(ctx)
	if err != nil {
		h.Log.Error("failed to build scoreboard", zap.Error(err))
		return
	}
	cfg := tgbotapi.SetChatDescriptionConfig{ChatID: chatID, Description: util.Truncate(text, 255)}
	if _, err := h.Bot.Request(cfg); err != nil {
		h.Log.Debug("failed to set chat description", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// announceIfComplete posts the scoreboard once every player in the chat
// has submitted all three games today.
func (h *TelegramHandler) announceIfComplete(ctx context.Context, msg *tgbotapi.Message) {
	entries, err := h.Repo.Day(ctx, domain.Today())
	if err != nil {
		h.Log.Error("failed to query today's scores", zap.Error(err))
		return
	}
	if !scoreboard.AllSubmitted(entries, h.participants(msg.Chat)) {
		return
	}
	util.SafeSend(h.Log, h.Bot, tgbotapi.NewMessage(msg.Chat.ID, "All players submitted! 🎉"))
	h.handleScoreboard(ctx, msg)
}

// participants counts the humans in a chat: the member count minus this
// bot, or 1 outside group chats.
func (h *TelegramHandler) participants(chat *tgbotapi.Chat) int {
	if chat == nil || !(chat.IsGroup() || chat.IsSuperGroup()) {
		return 1
	}
	count, err := h.Bot.GetChatMembersCount(tgbotapi.ChatMemberCountConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chat.ID},
	})
	if err != nil {
		h.Log.Warn("failed to count chat members", zap.Int64("chat_id", chat.ID), zap.Error(err))
		return 0
	}
	return count - 1
}

// scoreboardMessage renders today's per-game boards followed by the daily
// and monthly point totals.
func (h *TelegramHandler) scoreboardMessage(ctx context.Context) (string, error) {
	today := domain.Today()
	dayEntries, err := h.Repo.Day(ctx, today)
	if err != nil {
		return "", err
	}
	first, last, err := domain.MonthBounds(today)
	if err != nil {
		return "", err
	}
	monthEntries, err := h.Repo.Entries(ctx, first, last, "")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, board := range scoreboard.Boards(dayEntries) {
		fmt.Fprintf(&b, "🔢 %s points 🔢\n", board.Game)
		for _, row := range board.Rows {
			fmt.Fprintf(&b, "%s  %d\n", row.Player, row.Score)
		}
		b.WriteString("\n")
	}

	if dayTotals := scoreboard.Totals(dayEntries); len(dayTotals) == 0 {
		b.WriteString("No points scored for today! 😔\n\n")
	} else {
		b.WriteString("👑 Daily totals 👑\n")
		for _, t := range dayTotals {
			fmt.Fprintf(&b, "%s  %d\n", t.Player, t.Points)
		}
		b.WriteString("\n")
	}

	if monthTotals := scoreboard.Totals(monthEntries); len(monthTotals) == 0 {
		b.WriteString("No points scored for this month! 😢")
	} else {
		b.WriteString("📅 Monthly totals 📅\n")
		for _, t := range monthTotals {
			fmt.Fprintf(&b, "%s  %d\n", t.Player, t.Points)
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
