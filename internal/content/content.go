// Package content holds the static reference tables and pre-authored texts
// used by the Steppe Pulse conversation logic. All data is fixed at compile
// time and loaded into an immutable Store at startup.
package content

import "time"

// TeamMember describes one founding team member.
type TeamMember struct {
	Name        string
	Role        string
	Description string
}

// Ecosystem describes one conservation focus area.
type Ecosystem struct {
	Title       string
	Description string
}

// FAQEntry is one question/answer pair.
type FAQEntry struct {
	Question string
	Answer   string
}

// Store provides read-only access to the project content tables. A Store is
// safe for concurrent use: nothing mutates it after NewStore returns.
type Store struct {
	team       []TeamMember
	ecosystems []Ecosystem
	faqs       []FAQEntry
	updates    []string
}

// NewStore returns a Store populated with the Steppe Pulse project content.
func NewStore() *Store {
	return &Store{
		team:       teamMembers,
		ecosystems: ecosystems,
		faqs:       faqs,
		updates:    dailyUpdates,
	}
}

// Team returns the founding team members in presentation order.
func (s *Store) Team() []TeamMember { return s.team }

// Ecosystems returns the conservation ecosystems in presentation order.
func (s *Store) Ecosystems() []Ecosystem { return s.ecosystems }

// FAQs returns the FAQ entries in presentation order.
func (s *Store) FAQs() []FAQEntry { return s.faqs }

// DailyUpdates returns the broadcast message rotation.
func (s *Store) DailyUpdates() []string { return s.updates }

// DailyUpdate selects the broadcast message for the given time. Selection is
// unix-seconds mod sequence length, so which update goes out depends on the
// exact second the scheduler fires, not on the day count.
func (s *Store) DailyUpdate(t time.Time) (index int, text string) {
	index = int(t.Unix() % int64(len(s.updates)))
	return index, s.updates[index]
}

var teamMembers = []TeamMember{
	{
		Name:        "Henry Kimani",
		Role:        "CEO & co-founder",
		Description: "Software Engineer.",
	},
	{
		Name:        "Bridgit Nyambeka",
		Role:        "Project Manager & co-founder",
		Description: "Software Engineer & Graphic Designer",
	},
	{
		Name:        "Mirriam Njeri",
		Role:        "Marketing, Community lead & co-founder",
		Description: "Journalist & software developer.",
	},
	{
		Name:        "Brandistone Nyabonyi",
		Role:        "CTO & co-founder",
		Description: "Software Engineer",
	},
}

var ecosystems = []Ecosystem{
	{
		Title:       "Marine Conservation",
		Description: "Protecting ocean biodiversity through blockchain-powered initiatives",
	},
	{
		Title:       "Forest Preservation",
		Description: "Securing critical forest habitats and supporting reforestation efforts",
	},
	{
		Title:       "Alpine Ecosystem",
		Description: "Safeguarding high-altitude wildlife and fragile mountain environments",
	},
	{
		Title:       "Migratory Pathways",
		Description: "Tracking and protecting critical migration routes for endangered species",
	},
}

var faqs = []FAQEntry{
	{
		Question: "What is our primary mission?",
		Answer:   "We aim to leverage blockchain technology to support wildlife conservation efforts, creating unique digital assets that directly contribute to ecosystem preservation.",
	},
	{
		Question: "How do NFTs support conservation?",
		Answer:   "Each NFT represents a direct contribution to wildlife protection, with proceeds funding conservation projects, research, and habitat preservation.",
	},
	{
		Question: "Can anyone join the community?",
		Answer:   "Absolutely! We welcome anyone passionate about wildlife conservation and innovative blockchain solutions to join our global community.",
	},
	{
		Question: "How are funds used?",
		Answer:   "Funds are carefully allocated to vetted conservation projects, scientific research, and community-driven initiatives that protect endangered ecosystems.",
	},
}

var dailyUpdates = []string{
	"🐘 Did you know? African elephants are keystone species crucial for maintaining ecosystem balance.",
	"🌍 Every NFT purchased helps protect critical wildlife habitats around the globe!",
	"🌱 Reforestation update: Our latest project has planted 1000 trees in critical forest zones.",
	"🐝 Biodiversity matters: Pollinators like bees are essential for global food security.",
}
