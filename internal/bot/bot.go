// Package bot implements the core bot lifecycle: it orchestrates the HTTP
// server, the Telegram webhook update loop, and the task scheduler.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/steppepulse/steppebot/internal/config"
	"github.com/steppepulse/steppebot/internal/database"
	"github.com/steppepulse/steppebot/internal/server"
)

// Bot is the main application object; it owns the components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	cfg       *config.Config
	db        *sqlx.DB
	store     database.Store
	tgBot     *tgbot.Bot
	httpSrv   *server.Server
	scheduler *Scheduler
}

// NewBot creates the bot orchestrator from its already-constructed components.
func NewBot(
	logger *slog.Logger,
	cfg *config.Config,
	db *sqlx.DB,
	store database.Store,
	tgBot *tgbot.Bot,
	httpSrv *server.Server,
	scheduler *Scheduler,
) *Bot {
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		cfg:       cfg,
		db:        db,
		store:     store,
		tgBot:     tgBot,
		httpSrv:   httpSrv,
		scheduler: scheduler,
	}
}

// Run starts all components and blocks until the context is cancelled or a
// component fails. If a webhook URL is configured it is registered with
// Telegram first.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	if b.cfg.Telegram.WebhookURL != "" {
		ok, err := b.tgBot.SetWebhook(ctx, &tgbot.SetWebhookParams{
			URL:         b.cfg.Telegram.WebhookURL,
			SecretToken: b.cfg.Telegram.WebhookSecret,
		})
		if err != nil {
			return fmt.Errorf("failed to register webhook %q: %w", b.cfg.Telegram.WebhookURL, err)
		}
		if !ok {
			return fmt.Errorf("telegram rejected webhook %q", b.cfg.Telegram.WebhookURL)
		}
		b.logger.Info("Webhook registered", "url", b.cfg.Telegram.WebhookURL)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting webhook update loop...")

		b.tgBot.StartWebhook(gCtx)
		b.logger.Info("Webhook update loop stopped.")

		if gCtx.Err() == nil {
			return fmt.Errorf("webhook update loop stopped unexpectedly")
		}
		return nil
	})

	g.Go(func() error {
		if err := b.httpSrv.Run(gCtx); err != nil {
			b.logger.Error("HTTP server failed", "error", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		b.logger.Info("Starting scheduler...")
		if err := b.scheduler.Start(); err != nil {
			b.logger.Error("Failed to start scheduler", "error", err)
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		b.logger.Info("Shutdown signal received, stopping scheduler...")

		if err := b.scheduler.Stop(); err != nil {
			b.logger.Error("Error stopping scheduler", "error", err)
		}

		return nil
	})

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
