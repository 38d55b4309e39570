package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steppepulse/steppebot/internal/content"
	"github.com/steppepulse/steppebot/internal/server"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	server.HealthHandler(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != content.HealthBody {
		t.Errorf("body = %q, want %q", string(body), content.HealthBody)
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()

	webhookHits := 0
	webhook := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		webhookHits++
		w.WriteHeader(http.StatusOK)
	})

	ts := httptest.NewServer(server.NewMux(webhook))
	defer ts.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Liveness", http.MethodGet, "/", http.StatusOK},
		{"Webhook POST", http.MethodPost, server.WebhookPath, http.StatusOK},
		{"Webhook GET rejected", http.MethodGet, server.WebhookPath, http.StatusMethodNotAllowed},
		{"Unknown path", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			if err != nil {
				t.Fatalf("failed to build request: %v", err)
			}
			resp, err := ts.Client().Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.wantStatus)
			}
		})
	}

	if webhookHits != 1 {
		t.Errorf("webhook handler hits = %d, want 1", webhookHits)
	}
}
