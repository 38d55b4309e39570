package conversation

import (
	"fmt"
	"strings"

	"github.com/steppepulse/steppebot/internal/content"
)

// Responder renders topics into outbound message text by iterating the
// content tables. Output is a pure function of the tables and the topic.
type Responder struct {
	store *content.Store
}

// NewResponder creates a Responder over the given content store.
func NewResponder(store *content.Store) *Responder {
	return &Responder{store: store}
}

// Respond returns the full message body for a classified topic.
func (r *Responder) Respond(topic Topic) string {
	switch topic {
	case TopicMission:
		return content.Mission
	case TopicTeam:
		return r.TeamInfo()
	case TopicEcosystems:
		return r.EcosystemInfo()
	case TopicFAQ:
		return r.FAQInfo()
	default:
		return content.Fallback
	}
}

// TeamInfo renders the founding team table.
func (r *Responder) TeamInfo() string {
	var b strings.Builder
	b.WriteString("🤝 Our Founding Team:\n\n")
	for _, m := range r.store.Team() {
		fmt.Fprintf(&b, "*%s* - %s\n%s\n\n", m.Name, m.Role, m.Description)
	}
	return b.String()
}

// EcosystemInfo renders the conservation ecosystems table.
func (r *Responder) EcosystemInfo() string {
	var b strings.Builder
	b.WriteString("🌱 Our Conservation Ecosystems:\n\n")
	for _, e := range r.store.Ecosystems() {
		fmt.Fprintf(&b, "*%s*\n%s\n\n", e.Title, e.Description)
	}
	return b.String()
}

// FAQInfo renders the FAQ table.
func (r *Responder) FAQInfo() string {
	var b strings.Builder
	b.WriteString("❓ Frequently Asked Questions:\n\n")
	for _, f := range r.store.FAQs() {
		fmt.Fprintf(&b, "*Q: %s*\nA: %s\n\n", f.Question, f.Answer)
	}
	return b.String()
}
