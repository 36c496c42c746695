package tools

import (
	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/store"
)

// RegisterAll wires every support tool into the registry.
func RegisterAll(reg *agent.ToolRegistry, st *store.Store) {
	reg.Register(NewCheckAccountStatus(st))
	reg.Register(NewGetTransactionHistory(st))
	reg.Register(NewCreateSupportTicket(st))
	reg.Register(NewCheckServiceStatus(st))
}
