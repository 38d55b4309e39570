// Package tasks implements the scheduled tasks for the Steppe Pulse bot:
// the daily conservation update broadcast and database maintenance.
package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"github.com/steppepulse/steppebot/internal/broadcast"
	"github.com/steppepulse/steppebot/internal/config"
	"github.com/steppepulse/steppebot/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger      *slog.Logger
	Config      *config.Config
	Store       database.Store
	Broadcaster *broadcast.Broadcaster
	TgBot       *tgbot.Bot
}
