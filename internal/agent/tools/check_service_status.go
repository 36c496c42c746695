package tools

import (
	"context"

	"customer-support-agents/internal/store"
)

// CheckServiceStatus reports platform health. It needs no user identity.
type CheckServiceStatus struct {
	store *store.Store
}

// NewCheckServiceStatus creates the service status tool.
func NewCheckServiceStatus(st *store.Store) *CheckServiceStatus {
	return &CheckServiceStatus{store: st}
}

func (t *CheckServiceStatus) Name() string {
	return "check_service_status"
}

func (t *CheckServiceStatus) Description() string {
	return "Check whether the platform and its services are operational. Use when the user asks if something is down."
}

func (t *CheckServiceStatus) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *CheckServiceStatus) Execute(ctx context.Context, userID string, params map[string]interface{}) (interface{}, error) {
	status := t.store.ServiceStatus(ctx)
	return map[string]interface{}{
		"status":   status.Status,
		"services": status.Services,
	}, nil
}
