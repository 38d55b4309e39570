package bot_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbot "github.com/go-telegram/bot"

	"github.com/steppepulse/steppebot/internal/bot"
	"github.com/steppepulse/steppebot/internal/config"
)

// TestRunWebhookRejected covers the case where Telegram answers the webhook
// registration with ok=false and no error. Run must fail with a readable
// message instead of wrapping a nil error.
func TestRunWebhookRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":false}`))
	}))
	t.Cleanup(srv.Close)

	tg, err := tgbot.New("123:test", tgbot.WithServerURL(srv.URL), tgbot.WithSkipGetMe())
	if err != nil {
		t.Fatalf("failed to create test bot: %v", err)
	}

	cfg := &config.Config{
		Telegram: config.TelegramConfig{WebhookURL: "https://bot.example.com/webhook"},
	}
	app := bot.NewBot(slog.Default(), cfg, nil, nil, tg, nil, nil)

	runErr := app.Run(context.Background())
	if runErr == nil {
		t.Fatal("expected an error when telegram rejects the webhook")
	}
	if strings.Contains(runErr.Error(), "%!w") {
		t.Errorf("error wraps a nil cause: %v", runErr)
	}
	if !strings.Contains(runErr.Error(), "rejected webhook") {
		t.Errorf("error = %v, want a rejected webhook message", runErr)
	}
}
