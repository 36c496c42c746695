package http

import (
	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/store"
	"customer-support-agents/pkg/log"
)

// Handler is the public interface for the identity HTTP delivery layer.
type Handler interface {
	Detail(c *gin.Context)
	Transactions(c *gin.Context)
	CreateTicket(c *gin.Context)
	ServiceStatus(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store *store.Store
}

// New creates a new HTTP handler for the identity domain.
func New(l log.Logger, st *store.Store) *handler {
	return &handler{
		l:     l,
		store: st,
	}
}
