package support

import (
	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/gemini"
	"customer-support-agents/pkg/log"
)

// Support resolves account requests through a bounded tool-calling loop.
type Support struct {
	llm   gemini.IGemini
	tools *agent.ToolRegistry
	l     log.Logger
}

var _ agent.Handler = (*Support)(nil)

// New creates the support handler and registers it.
func New(reg *agent.Registry, llm gemini.IGemini, tools *agent.ToolRegistry, l log.Logger) *Support {
	s := &Support{
		llm:   llm,
		tools: tools,
		l:     l,
	}

	reg.Register(agent.Metadata{
		Name:        HandlerName,
		Description: handlerDescription,
		Intents: []model.IntentCategory{
			model.IntentCustomerSupport,
		},
		Capabilities:   []string{"account_status", "transaction_history", "ticket_creation", "service_status"},
		Priority:       handlerPriority,
		RequiresUserID: true,
		Handler:        s,
	})

	return s
}

// Name implements agent.Handler.
func (s *Support) Name() string {
	return HandlerName
}
