package tools

import (
	"context"
	"fmt"

	"customer-support-agents/internal/store"
)

// CheckAccountStatus looks up the requesting user's account.
type CheckAccountStatus struct {
	store *store.Store
}

// NewCheckAccountStatus creates the account status tool.
func NewCheckAccountStatus(st *store.Store) *CheckAccountStatus {
	return &CheckAccountStatus{store: st}
}

func (t *CheckAccountStatus) Name() string {
	return "check_account_status"
}

func (t *CheckAccountStatus) Description() string {
	return "Check the current user's account status, name and balance. Use when the user asks about their account."
}

func (t *CheckAccountStatus) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *CheckAccountStatus) Execute(ctx context.Context, userID string, params map[string]interface{}) (interface{}, error) {
	user, err := t.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check_account_status: %w", err)
	}

	return map[string]interface{}{
		"user_id": user.UserID,
		"name":    user.Name,
		"email":   user.Email,
		"status":  user.Status,
		"balance": user.Balance,
	}, nil
}
