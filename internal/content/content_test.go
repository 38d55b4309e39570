package content_test

import (
	"strings"
	"testing"
	"time"

	"github.com/steppepulse/steppebot/internal/content"
)

func TestStoreTables(t *testing.T) {
	t.Parallel()

	s := content.NewStore()

	if got := len(s.Team()); got != 4 {
		t.Errorf("len(Team()) = %d, want 4", got)
	}
	if got := s.Team()[0].Name; got != "Henry Kimani" {
		t.Errorf("Team()[0].Name = %q, want Henry Kimani", got)
	}

	if got := len(s.Ecosystems()); got != 4 {
		t.Errorf("len(Ecosystems()) = %d, want 4", got)
	}
	if got := s.Ecosystems()[0].Title; got != "Marine Conservation" {
		t.Errorf("Ecosystems()[0].Title = %q, want Marine Conservation", got)
	}

	if got := len(s.FAQs()); got != 4 {
		t.Errorf("len(FAQs()) = %d, want 4", got)
	}
	if got := s.FAQs()[0].Question; got != "What is our primary mission?" {
		t.Errorf("FAQs()[0].Question = %q", got)
	}

	if got := len(s.DailyUpdates()); got != 4 {
		t.Errorf("len(DailyUpdates()) = %d, want 4", got)
	}
}

func TestDailyUpdateSelection(t *testing.T) {
	t.Parallel()

	s := content.NewStore()
	updates := s.DailyUpdates()

	tests := []struct {
		name string
		unix int64
	}{
		{"Remainder zero", 4_000_000_000},
		{"Remainder one", 4_000_000_001},
		{"Remainder two", 4_000_000_002},
		{"Remainder three", 4_000_000_003},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, text := s.DailyUpdate(time.Unix(tt.unix, 0))
			wantIndex := int(tt.unix % 4)
			if index != wantIndex {
				t.Errorf("index = %d, want %d", index, wantIndex)
			}
			if text != updates[wantIndex] {
				t.Errorf("text = %q, want %q", text, updates[wantIndex])
			}
		})
	}
}

func TestDailyUpdateReforestationSlot(t *testing.T) {
	t.Parallel()

	s := content.NewStore()

	// Timestamps with unix mod 4 == 2 select the reforestation update.
	_, text := s.DailyUpdate(time.Unix(1_750_000_002, 0))
	if !strings.Contains(text, "Reforestation update") {
		t.Errorf("update for unix%%4==2 = %q, want the reforestation update", text)
	}
}

// TestFixedTexts compares the fixed texts byte for byte, trailing spaces
// included.
func TestFixedTexts(t *testing.T) {
	t.Parallel()

	wantMission := "🌍 Steppe Pulse Mission:\n" +
		"We're pioneering a revolutionary intersection of blockchain technology and wildlife conservation. \n" +
		"Our mission is to transform digital assets into powerful conservation tools, connecting passionate global citizens with critical environmental challenges."
	if content.Mission != wantMission {
		t.Errorf("Mission = %q, want %q", content.Mission, wantMission)
	}

	wantFallback := "🤖 I'm an intelligent bot for Steppe Pulse Wildlife Conservation. \n" +
		"I can help you with information about our mission, team, ecosystems, and NFT projects. \n" +
		"Try asking about our mission, team, ecosystems, or frequently asked questions!"
	if content.Fallback != wantFallback {
		t.Errorf("Fallback = %q, want %q", content.Fallback, wantFallback)
	}

	wantWelcome := "🌍 Welcome to Steppe Pulse Conservation Bot! \n" +
		"\n" +
		"I'm your intelligent assistant for wildlife conservation and blockchain innovation. \n" +
		"What would you like to know about our mission, team, or conservation efforts?\n" +
		"\n" +
		"Quick Commands:\n" +
		"/mission - Learn about our vision\n" +
		"/team - Meet our founders\n" +
		"/ecosystems - Explore our conservation focus areas\n" +
		"/faq - Frequently Asked Questions"
	if content.Welcome != wantWelcome {
		t.Errorf("Welcome = %q, want %q", content.Welcome, wantWelcome)
	}

	if content.HealthBody != "Steppe Pulse Conservation Bot is running!" {
		t.Errorf("health body = %q", content.HealthBody)
	}
}
