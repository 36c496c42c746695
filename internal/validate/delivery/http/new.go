package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/agent/validator"
	"customer-support-agents/pkg/log"
)

// Handler is the public interface for the validation HTTP delivery layer.
type Handler interface {
	RunSuite(c *gin.Context)
	RunCase(c *gin.Context)
}

// Harness is the slice of the validator this delivery layer needs.
type Harness interface {
	RunAll(ctx context.Context) validator.SuiteResult
	RunCase(ctx context.Context, tc validator.TestCase) validator.CaseResult
	CaseByID(id string) (validator.TestCase, bool)
	Suite() []validator.TestCase
}

type handler struct {
	l       log.Logger
	harness Harness
}

// New creates a new HTTP handler for the validation domain.
func New(l log.Logger, harness Harness) *handler {
	return &handler{
		l:       l,
		harness: harness,
	}
}
