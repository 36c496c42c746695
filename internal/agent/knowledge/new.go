package knowledge

import (
	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/internal/rag"
	"customer-support-agents/pkg/log"
)

// Knowledge answers documentation questions via retrieval plus generation.
type Knowledge struct {
	retriever rag.Retriever
	oracle    agent.Oracle
	l         log.Logger
}

var _ agent.Handler = (*Knowledge)(nil)

// New creates the knowledge handler and registers it.
func New(reg *agent.Registry, retriever rag.Retriever, oracle agent.Oracle, l log.Logger) *Knowledge {
	k := &Knowledge{
		retriever: retriever,
		oracle:    oracle,
		l:         l,
	}

	reg.Register(agent.Metadata{
		Name:        HandlerName,
		Description: handlerDescription,
		Intents: []model.IntentCategory{
			model.IntentProductInfo,
			model.IntentGeneralQuestion,
		},
		Capabilities: []string{"rag_retrieval", "product_info", "web_search"},
		Priority:     handlerPriority,
		Handler:      k,
	})

	return k
}

// Name implements agent.Handler.
func (k *Knowledge) Name() string {
	return HandlerName
}
