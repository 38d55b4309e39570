package handlers

import (
	"log/slog"

	"github.com/steppepulse/steppebot/internal/broadcast"
	"github.com/steppepulse/steppebot/internal/config"
	"github.com/steppepulse/steppebot/internal/conversation"
	"github.com/steppepulse/steppebot/internal/database"
)

// HandlerDeps provides dependencies for Telegram update handlers.
type HandlerDeps struct {
	Logger      *slog.Logger
	Config      *config.Config
	Responder   *conversation.Responder
	Sessions    *conversation.Sessions
	Store       database.Store
	Broadcaster *broadcast.Broadcaster
}
