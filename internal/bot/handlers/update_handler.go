package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewUpdateHandler returns a handler for the admin-only /pulse_update
// command, which fires the daily conservation update immediately instead of
// waiting for the next scheduled run.
func NewUpdateHandler(deps HandlerDeps) bot.HandlerFunc {
	return updateHandler{deps}.Handle
}

type updateHandler struct {
	deps HandlerDeps
}

func (h updateHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "pulse_update")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Update handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /pulse_update command", "chat_id", chatID, "user_id", update.Message.From.ID)

	if err := h.deps.Broadcaster.Send(ctx, b); err != nil {
		log.ErrorContext(ctx, "Manual broadcast failed", "error", err)

		_, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Failed to send the conservation update.",
		})
		if sendErr != nil {
			log.ErrorContext(ctx, "Failed to send failure notice", "error", sendErr, "chat_id", chatID)
		}
	}
}
