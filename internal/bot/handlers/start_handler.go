package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/steppepulse/steppebot/internal/content"
	"github.com/steppepulse/steppebot/internal/conversation"
)

// NewStartHandler returns a handler for the /start command. It sends the
// welcome text with the topic selection keyboard as a reply.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Start handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /start command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          update.Message.Chat.ID,
		Text:            content.Welcome,
		ReplyMarkup:     WelcomeKeyboard(),
		ReplyParameters: &models.ReplyParameters{MessageID: update.Message.ID},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send welcome message", "error", err, "chat_id", update.Message.Chat.ID)
	}
}

// WelcomeKeyboard builds the inline keyboard attached to the welcome
// message: one row of Mission, Team, and Ecosystems buttons.
func WelcomeKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "Our Mission", CallbackData: conversation.CallbackMission},
				{Text: "Our Team", CallbackData: conversation.CallbackTeam},
				{Text: "Ecosystems", CallbackData: conversation.CallbackEcosystems},
			},
		},
	}
}
