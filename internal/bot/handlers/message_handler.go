package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/steppepulse/steppebot/internal/conversation"
	"github.com/steppepulse/steppebot/internal/database"
)

const dbSaveTimeout = 5 * time.Second

// NewMessageHandler returns the default handler for free-text messages. It
// classifies the text into a topic and replies with the assembled response.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		log.DebugContext(ctx, "Ignoring update with nil message, empty text, or nil sender", "update_id", update.ID)
		return
	}

	chatID := msg.Chat.ID
	topic := conversation.Classify(msg.Text)
	h.deps.Sessions.Track(chatID, topic, time.Now())

	log.InfoContext(ctx, "Classified message", "chat_id", chatID, "user_id", msg.From.ID, "topic", topic.String())

	h.logMessage(ctx, msg, topic.String())

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          chatID,
		Text:            h.deps.Responder.Respond(topic),
		ParseMode:       models.ParseModeMarkdownV1,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send response", "error", err, "chat_id", chatID, "topic", topic.String())
	}
}

// logMessage records the classified message in the activity log. Failures
// never affect the reply; they are logged and dropped.
func (h messageHandler) logMessage(ctx context.Context, msg *models.Message, topic string) {
	if h.deps.Store == nil {
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, dbSaveTimeout)
	defer cancel()

	record := &database.Message{
		ChatID:  msg.Chat.ID,
		UserID:  msg.From.ID,
		Content: msg.Text,
		Topic:   topic,
	}
	if err := h.deps.Store.SaveMessage(saveCtx, record); err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to log message", "error", err, "chat_id", msg.Chat.ID)
	}
}
