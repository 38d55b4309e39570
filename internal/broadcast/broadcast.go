// Package broadcast implements the daily conservation update: selecting the
// message for the current time and dispatching it to the configured
// recipient chat. Both the scheduler task and the admin trigger command use
// the same Broadcaster.
package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/steppepulse/steppebot/internal/content"
	"github.com/steppepulse/steppebot/internal/database"
)

// MessageSender is the outbound transport surface the Broadcaster needs.
// *bot.Bot satisfies it; tests substitute a stub.
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Broadcaster sends scheduled updates to a single recipient chat. There is
// no retry policy: a failed send is dropped until the next scheduled fire.
type Broadcaster struct {
	logger    *slog.Logger
	content   *content.Store
	store     database.Store
	recipient int64
	now       func() time.Time
}

// New creates a Broadcaster targeting the given recipient chat ID.
func New(logger *slog.Logger, contentStore *content.Store, store database.Store, recipient int64) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{
		logger:    logger.With("component", "broadcaster"),
		content:   contentStore,
		store:     store,
		recipient: recipient,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for update selection. Tests use this to
// pin the selected update.
func (br *Broadcaster) WithClock(now func() time.Time) *Broadcaster {
	br.now = now
	return br
}

// Send selects the update for the current time and dispatches it to the
// recipient chat, recording the delivery in the activity log on success.
func (br *Broadcaster) Send(ctx context.Context, sender MessageSender) error {
	index, text := br.content.DailyUpdate(br.now())

	_, err := sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: br.recipient,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to send daily update: %w", err)
	}

	br.logger.InfoContext(ctx, "Sent daily update", "chat_id", br.recipient, "update_index", index)

	if br.store != nil {
		record := &database.Broadcast{
			ChatID:      br.recipient,
			UpdateIndex: index,
			Content:     text,
		}
		if saveErr := br.store.SaveBroadcast(ctx, record); saveErr != nil {
			// The update already went out; a failed audit write is log-only.
			br.logger.ErrorContext(ctx, "Failed to record broadcast", "error", saveErr)
		}
	}

	return nil
}
