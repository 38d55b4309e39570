package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStatsHandler returns a handler for the admin-only /pulse_stats command,
// which reports activity counters from the database and the session store.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "pulse_stats")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Stats handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /pulse_stats command", "chat_id", chatID, "user_id", update.Message.From.ID)

	if h.deps.Store == nil {
		log.WarnContext(ctx, "Stats requested but no activity store is configured", "chat_id", chatID)
		h.sendText(ctx, b, chatID, "❌ Activity stats are unavailable.")
		return
	}

	messages, err := h.deps.Store.CountMessages(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to count messages", "error", err)
		h.sendText(ctx, b, chatID, "❌ Failed to read activity stats.")
		return
	}

	broadcasts, err := h.deps.Store.CountBroadcasts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to count broadcasts", "error", err)
		h.sendText(ctx, b, chatID, "❌ Failed to read activity stats.")
		return
	}

	stats := fmt.Sprintf(
		"📊 Bot activity:\n\nMessages classified: %d\nDaily updates sent: %d\nActive chats: %d",
		messages, broadcasts, h.deps.Sessions.Len(),
	)
	h.sendText(ctx, b, chatID, stats)
}

func (h statsHandler) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send stats reply", "error", err, "chat_id", chatID)
	}
}
