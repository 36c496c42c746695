package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/agent"
	"customer-support-agents/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	ProcessMessage(c *gin.Context)
}

type handler struct {
	l      log.Logger
	router agent.Handler
}

// New creates a new HTTP handler for the chat domain. The router argument is
// the orchestrator; delivery only sees the Handler contract.
func New(l log.Logger, router agent.Handler) *handler {
	return &handler{
		l:      l,
		router: router,
	}
}
