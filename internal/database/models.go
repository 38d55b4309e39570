package database

import "time"

// Message is one classified inbound message, recorded for auditing and the
// admin stats command. The reply path never reads these rows back.
type Message struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	ChatID  int64  `db:"chat_id"`
	UserID  int64  `db:"user_id"`
	Content string `db:"content"`
	Topic   string `db:"topic"`
}

// Broadcast is one delivered scheduled update.
type Broadcast struct {
	ID     uint      `db:"id"`
	SentAt time.Time `db:"sent_at"`

	ChatID      int64  `db:"chat_id"`
	UpdateIndex int    `db:"update_index"`
	Content     string `db:"content"`
}
