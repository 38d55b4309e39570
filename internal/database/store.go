package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for activity log operations. Methods accept
// context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// SaveMessage inserts a classified inbound message record.
	SaveMessage(ctx context.Context, message *Message) error

	// SaveBroadcast inserts a delivered broadcast record.
	SaveBroadcast(ctx context.Context, broadcast *Broadcast) error

	// CountMessages returns the total number of logged messages.
	CountMessages(ctx context.Context) (int64, error)

	// CountBroadcasts returns the total number of delivered broadcasts.
	CountBroadcasts(ctx context.Context) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore implements Store using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by the given connected sqlx.DB.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) SaveMessage(ctx context.Context, message *Message) error {
	if message == nil {
		return fmt.Errorf("cannot save nil message")
	}
	if message.ChatID == 0 {
		return fmt.Errorf("message must have a non-zero chat_id")
	}
	if message.Content == "" {
		return fmt.Errorf("message must have non-empty content")
	}

	message.CreatedAt = time.Now().UTC()

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO messages (chat_id, user_id, content, topic, created_at)
		VALUES (:chat_id, :user_id, :content, :topic, :created_at)`, message)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save message",
			"chat_id", message.ChatID, "user_id", message.UserID, "error", err)
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (s *sqlxStore) SaveBroadcast(ctx context.Context, broadcast *Broadcast) error {
	if broadcast == nil {
		return fmt.Errorf("cannot save nil broadcast")
	}
	if broadcast.ChatID == 0 {
		return fmt.Errorf("broadcast must have a non-zero chat_id")
	}

	if broadcast.SentAt.IsZero() {
		broadcast.SentAt = time.Now().UTC()
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO broadcasts (chat_id, update_index, content, sent_at)
		VALUES (:chat_id, :update_index, :content, :sent_at)`, broadcast)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to save broadcast",
			"chat_id", broadcast.ChatID, "update_index", broadcast.UpdateIndex, "error", err)
		return fmt.Errorf("failed to save broadcast: %w", err)
	}
	return nil
}

func (s *sqlxStore) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}

func (s *sqlxStore) CountBroadcasts(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM broadcasts`); err != nil {
		return 0, fmt.Errorf("failed to count broadcasts: %w", err)
	}
	return count, nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	startTime := time.Now()

	for _, stmt := range []string{"VACUUM", "PRAGMA optimize"} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("maintenance statement %q failed: %w", stmt, err)
		}
	}

	s.logger.InfoContext(ctx, "Database maintenance completed", "duration", time.Since(startTime))
	return nil
}
