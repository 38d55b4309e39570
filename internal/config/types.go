// Package config provides configuration loading and validation for the
// Steppe Pulse bot. Values come from defaults, an optional config.yaml, and
// BOT_* environment variables, in that order of precedence.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
)

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credentials and broadcast recipient.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// AdminChatID is the single recipient of scheduled broadcasts and the
	// only user allowed to run admin commands.
	AdminChatID int64 `mapstructure:"admin_chat_id" validate:"required,gt=0"`

	// WebhookURL, when set, is registered with Telegram at startup. The
	// secret token is echoed back by Telegram on every webhook delivery.
	WebhookURL    string `mapstructure:"webhook_url" validate:"omitempty,url"`
	WebhookSecret string `mapstructure:"webhook_secret"`

	// BotInfo is populated at runtime from GetMe, not from configuration.
	BotInfo *models.User `mapstructure:"-"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" validate:"required"`
}

// DatabaseConfig holds the activity log database settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig configures one scheduled task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Validate checks the configuration against the struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
