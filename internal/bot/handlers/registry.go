package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/steppepulse/steppebot/internal/conversation"
)

// RegisteredHandler represents a handler with its registration parameters
// and middleware. It encapsulates everything needed to register the handler
// with the bot.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all command and
// callback handlers. Free text that matches no command is handled by the
// default handler registered in main.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}

	// The welcome keyboard buttons route here. FAQ has no button; it is
	// reachable only through free-text classification.
	callbackHandler := NewCallbackHandler(deps)
	for _, data := range []string{
		conversation.CallbackMission,
		conversation.CallbackTeam,
		conversation.CallbackEcosystems,
	} {
		handlers["callback:"+data] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeCallbackQueryData,
			Pattern:     data,
			Handler:     callbackHandler,
			MatchType:   tgbot.MatchTypeExact,
		}
	}

	adminMiddleware := []tgbot.Middleware{AdminOnly(deps)}

	handlers["/pulse_update"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "pulse_update",
		Handler:     NewUpdateHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}
	handlers["/pulse_stats"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "pulse_stats",
		Handler:     NewStatsHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Middleware:  adminMiddleware,
	}

	return handlers
}
