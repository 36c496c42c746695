package agent

import (
	"context"

	"customer-support-agents/internal/model"
)

// Handler is the contract every specialized agent implements. The
// orchestrator is written against this interface only, never against
// concrete agent types.
type Handler interface {
	// Name returns the unique handler name used for registry lookups.
	Name() string

	// Process handles one request. Implementations return a degraded
	// HandlerResult for recoverable problems; a non-nil error means the
	// handler could not produce a usable result at all and the caller
	// substitutes a synthetic error result.
	Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error)

	// HealthCheck reports handler liveness.
	HealthCheck(ctx context.Context) HealthStatus
}

// HealthStatus is the reply to a HealthCheck call.
type HealthStatus struct {
	Status string `json:"status"`
}

// Healthy is the default HealthCheck reply.
func Healthy() HealthStatus {
	return HealthStatus{Status: "healthy"}
}

// Oracle is the external judgment model used for classification, synthesis
// and semantic comparison. It is an opaque text-to-text function; all prompt
// construction and reply parsing happens on the caller's side.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
