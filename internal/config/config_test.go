package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/steppepulse/steppebot/internal/config"
)

// setRequiredEnv provides the minimum environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:TEST-TOKEN")
	t.Setenv("BOT_TELEGRAM_ADMIN_CHAT_ID", "99")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, config.DefaultLogLevel)
	}
	if cfg.Server.ListenAddr != config.DefaultListenAddr {
		t.Errorf("Server.ListenAddr = %q, want %q", cfg.Server.ListenAddr, config.DefaultListenAddr)
	}
	if cfg.Database.Path != config.DefaultDBPath {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, config.DefaultDBPath)
	}

	task, ok := cfg.Scheduler.Tasks[config.TaskDailyUpdate]
	if !ok {
		t.Fatalf("missing default %s task config", config.TaskDailyUpdate)
	}
	if !task.Enabled {
		t.Errorf("%s should be enabled by default", config.TaskDailyUpdate)
	}
	if task.Schedule != config.DefaultDailyUpdateSchedule {
		t.Errorf("%s schedule = %q, want %q", config.TaskDailyUpdate, task.Schedule, config.DefaultDailyUpdateSchedule)
	}
}

func TestLoadFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_LOG_LEVEL", "debug")
	t.Setenv("BOT_SERVER_LISTEN_ADDR", ":9090")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Telegram.Token != "123456:TEST-TOKEN" {
		t.Errorf("Telegram.Token = %q", cfg.Telegram.Token)
	}
	if cfg.Telegram.AdminChatID != 99 {
		t.Errorf("Telegram.AdminChatID = %d, want 99", cfg.Telegram.AdminChatID)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("Server.ListenAddr = %q, want :9090", cfg.Server.ListenAddr)
	}
}

func TestLoadFromFile(t *testing.T) {
	setRequiredEnv(t)

	configYAML := `
log:
  level: warn
  json: false
database:
  path: /tmp/test-steppebot.db
scheduler:
  tasks:
    daily_update:
      enabled: false
      schedule: "0 12 * * *"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Database.Path != "/tmp/test-steppebot.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	task := cfg.Scheduler.Tasks[config.TaskDailyUpdate]
	if task.Enabled {
		t.Error("daily_update should be disabled by the config file")
	}
	if task.Schedule != "0 12 * * *" {
		t.Errorf("daily_update schedule = %q", task.Schedule)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Missing token",
			env: map[string]string{
				"BOT_TELEGRAM_ADMIN_CHAT_ID": "99",
			},
		},
		{
			name: "Missing admin chat id",
			env: map[string]string{
				"BOT_TELEGRAM_TOKEN": "123456:TEST-TOKEN",
			},
		},
		{
			name: "Invalid log level",
			env: map[string]string{
				"BOT_TELEGRAM_TOKEN":         "123456:TEST-TOKEN",
				"BOT_TELEGRAM_ADMIN_CHAT_ID": "99",
				"BOT_LOG_LEVEL":              "verbose",
			},
		},
		{
			name: "Invalid webhook url",
			env: map[string]string{
				"BOT_TELEGRAM_TOKEN":         "123456:TEST-TOKEN",
				"BOT_TELEGRAM_ADMIN_CHAT_ID": "99",
				"BOT_TELEGRAM_WEBHOOK_URL":   "not-a-url",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
