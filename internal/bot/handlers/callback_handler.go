package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewCallbackHandler returns a handler for welcome keyboard button presses.
// It acknowledges the callback query and sends the resolved response to the
// originating chat.
func NewCallbackHandler(deps HandlerDeps) bot.HandlerFunc {
	return callbackHandler{deps}.Handle
}

type callbackHandler struct {
	deps HandlerDeps
}

func (h callbackHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "callback")

	cb := update.CallbackQuery
	if cb == nil {
		log.WarnContext(ctx, "Callback handler received update without callback query", "update_id", update.ID)
		return
	}

	reply, err := h.deps.Responder.ResolveCallback(cb.Data)
	if err != nil {
		log.WarnContext(ctx, "Received unresolvable callback", "data", cb.Data, "error", err)
		return
	}

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cb.ID,
		Text:            reply.Title,
	}); err != nil {
		log.ErrorContext(ctx, "Failed to answer callback query", "error", err, "callback_query_id", cb.ID)
	}

	chatID, ok := callbackChatID(cb)
	if !ok {
		log.WarnContext(ctx, "Callback message inaccessible, cannot determine chat", "callback_query_id", cb.ID)
		return
	}

	log.InfoContext(ctx, "Handling callback", "chat_id", chatID, "data", cb.Data)

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      reply.Body,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send callback response", "error", err, "chat_id", chatID, "data", cb.Data)
	}
}

// callbackChatID extracts the chat ID from a callback query, handling the
// case where the originating message is no longer accessible.
func callbackChatID(cb *models.CallbackQuery) (int64, bool) {
	if cb.Message.Message != nil {
		return cb.Message.Message.Chat.ID, true
	}
	if cb.Message.InaccessibleMessage != nil {
		return cb.Message.InaccessibleMessage.Chat.ID, true
	}
	return 0, false
}
