// Package main contains the entrypoint for the Steppe Pulse Telegram bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"github.com/steppepulse/steppebot/internal/bot"
	"github.com/steppepulse/steppebot/internal/bot/handlers"
	"github.com/steppepulse/steppebot/internal/bot/tasks"
	"github.com/steppepulse/steppebot/internal/broadcast"
	"github.com/steppepulse/steppebot/internal/config"
	"github.com/steppepulse/steppebot/internal/content"
	"github.com/steppepulse/steppebot/internal/conversation"
	"github.com/steppepulse/steppebot/internal/database"
	"github.com/steppepulse/steppebot/internal/logger"
	"github.com/steppepulse/steppebot/internal/server"
	"github.com/steppepulse/steppebot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components, handles graceful
// shutdown, and returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	contentStore := content.NewStore()
	responder := conversation.NewResponder(contentStore)
	sessions := conversation.NewSessions()
	broadcaster := broadcast.New(log, contentStore, store, cfg.Telegram.AdminChatID)

	hDeps := handlers.HandlerDeps{
		Logger:      log,
		Config:      cfg,
		Responder:   responder,
		Sessions:    sessions,
		Store:       store,
		Broadcaster: broadcaster,
	}

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(handlers.NewMessageHandler(hDeps)),
	}
	if cfg.Telegram.WebhookSecret != "" {
		botOpts = append(botOpts, tgbot.WithWebhookSecretToken(cfg.Telegram.WebhookSecret))
	}

	tg, err := telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

	if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
		log.Error("Failed to register Telegram handlers", "error", err)
		return 1
	}
	if err := telegram.SetCommands(ctx, tg); err != nil {
		log.Error("Failed to set Telegram commands", "error", err)
		return 1
	}

	tDeps := tasks.TaskDeps{
		Logger:      log,
		Config:      cfg,
		Store:       store,
		Broadcaster: broadcaster,
		TgBot:       tg,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	httpSrv := server.New(log, cfg.Server.ListenAddr, tg.WebhookHandler())

	app := bot.NewBot(log, cfg, db, store, tg, httpSrv, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
