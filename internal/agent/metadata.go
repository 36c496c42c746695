package agent

import "customer-support-agents/internal/model"

// Metadata describes a registered handler. The registry stores metadata,
// not handlers: the Handler reference is shared, never owned, and the
// registry neither constructs nor tears handlers down.
type Metadata struct {
	Name           string
	Description    string
	Intents        []model.IntentCategory
	Capabilities   []string
	Priority       int // higher wins ties during selection
	RequiresUserID bool
	Handler        Handler
}

// HandlesIntent reports whether the handler lists the given intent.
func (m Metadata) HandlesIntent(intent model.IntentCategory) bool {
	for _, i := range m.Intents {
		if i == intent {
			return true
		}
	}
	return false
}

// HasCapability reports whether the handler lists the given capability tag.
func (m Metadata) HasCapability(tag string) bool {
	for _, c := range m.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}
