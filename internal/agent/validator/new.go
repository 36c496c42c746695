package validator

import (
	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/log"
)

// Validator replays curated question/answer pairs against the answering
// pipeline and judges the replies with the oracle.
type Validator struct {
	registry *agent.Registry
	oracle   agent.Oracle
	suite    []TestCase
	l        log.Logger
}

var _ agent.Handler = (*Validator)(nil)

// New creates the validation handler and registers it.
func New(reg *agent.Registry, oracle agent.Oracle, suite []TestCase, l log.Logger) *Validator {
	v := &Validator{
		registry: reg,
		oracle:   oracle,
		suite:    suite,
		l:        l,
	}

	reg.Register(agent.Metadata{
		Name:        HandlerName,
		Description: handlerDescription,
		Intents: []model.IntentCategory{
			model.IntentSystemTesting,
		},
		Capabilities: []string{"validation", "quality_probing"},
		Priority:     handlerPriority,
		Handler:      v,
	})

	return v
}

// Name implements agent.Handler.
func (v *Validator) Name() string {
	return HandlerName
}
