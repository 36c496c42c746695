package orchestrator

import (
	"customer-support-agents/internal/agent"
	"customer-support-agents/pkg/log"
)

// Orchestrator is the routing entry point: it classifies each request,
// selects handlers from the registry and aggregates their results. It is a
// handler itself so health checks and introspection treat it uniformly, but
// it lists no intents and is never routed to.
type Orchestrator struct {
	registry *agent.Registry
	oracle   agent.Oracle
	l        log.Logger
}

var _ agent.Handler = (*Orchestrator)(nil)

// New creates the orchestrator and registers it.
func New(reg *agent.Registry, oracle agent.Oracle, l log.Logger) *Orchestrator {
	o := &Orchestrator{
		registry: reg,
		oracle:   oracle,
		l:        l,
	}

	reg.Register(agent.Metadata{
		Name:         HandlerName,
		Description:  handlerDescription,
		Capabilities: []string{"routing", "intent_classification"},
		Priority:     handlerPriority,
		Handler:      o,
	})

	return o
}

// Name implements agent.Handler.
func (o *Orchestrator) Name() string {
	return HandlerName
}
