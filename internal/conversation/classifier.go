// Package conversation implements the keyword-driven conversation core:
// topic classification of free text, response assembly from the content
// tables, inline-button callback resolution, and per-chat session state.
package conversation

import "strings"

// Topic is the classified conversational intent bucket.
type Topic int

const (
	TopicUnknown Topic = iota
	TopicMission
	TopicTeam
	TopicEcosystems
	TopicFAQ
)

// String returns a stable lower-case name for the topic, used in logs and
// the message activity log.
func (t Topic) String() string {
	switch t {
	case TopicMission:
		return "mission"
	case TopicTeam:
		return "team"
	case TopicEcosystems:
		return "ecosystems"
	case TopicFAQ:
		return "faq"
	default:
		return "unknown"
	}
}

// topicKeywords lists the keyword sets in match priority order. The first
// set containing a matching keyword wins, so ties are impossible.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicMission, []string{"mission", "goal", "purpose"}},
	{TopicTeam, []string{"team", "founder", "members"}},
	{TopicEcosystems, []string{"ecosystem", "conservation", "project"}},
	{TopicFAQ, []string{"help", "question", "faq"}},
}

// Classify determines which topic the given free text refers to. Matching is
// case-insensitive substring presence with no tokenization, so "projectile"
// matches the "project" keyword.
func Classify(text string) Topic {
	lower := strings.ToLower(text)
	for _, set := range topicKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.topic
			}
		}
	}
	return TopicUnknown
}
