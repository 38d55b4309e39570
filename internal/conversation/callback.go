package conversation

import "fmt"

// Inline keyboard callback identifiers attached to the welcome buttons.
const (
	CallbackMission    = "mission"
	CallbackTeam       = "team"
	CallbackEcosystems = "ecosystems"
)

// CallbackReply is the pair of strings sent in response to a button press:
// Title acknowledges the callback query, Body is the follow-up message.
type CallbackReply struct {
	Title string
	Body  string
}

// ResolveCallback maps an inline button press to its reply. FAQ and the
// fallback are not reachable through this path.
//
// The "mission" button sends the first FAQ answer rather than the mission
// statement; clients depend on this.
func (r *Responder) ResolveCallback(data string) (CallbackReply, error) {
	switch data {
	case CallbackMission:
		return CallbackReply{Title: "Our Mission", Body: r.store.FAQs()[0].Answer}, nil
	case CallbackTeam:
		return CallbackReply{Title: "Our Team", Body: r.TeamInfo()}, nil
	case CallbackEcosystems:
		return CallbackReply{Title: "Conservation Ecosystems", Body: r.EcosystemInfo()}, nil
	default:
		return CallbackReply{}, fmt.Errorf("unknown callback data %q", data)
	}
}
