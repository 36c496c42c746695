package tools

import (
	"context"
	"fmt"

	"customer-support-agents/internal/store"
)

// CreateSupportTicket opens a support ticket for the requesting user.
type CreateSupportTicket struct {
	store *store.Store
}

// NewCreateSupportTicket creates the ticket tool.
func NewCreateSupportTicket(st *store.Store) *CreateSupportTicket {
	return &CreateSupportTicket{store: st}
}

func (t *CreateSupportTicket) Name() string {
	return "create_support_ticket"
}

func (t *CreateSupportTicket) Description() string {
	return "Create a support ticket for the current user. Use when the user reports a problem that needs follow-up."
}

func (t *CreateSupportTicket) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"issue": map[string]interface{}{
				"type":        "string",
				"description": "Short description of the problem.",
			},
		},
		"required": []string{"issue"},
	}
}

func (t *CreateSupportTicket) Execute(ctx context.Context, userID string, params map[string]interface{}) (interface{}, error) {
	issue, _ := params["issue"].(string)
	if issue == "" {
		return nil, fmt.Errorf("create_support_ticket: issue is required")
	}

	ticket, err := t.store.CreateTicket(ctx, userID, issue)
	if err != nil {
		return nil, fmt.Errorf("create_support_ticket: %w", err)
	}

	return map[string]interface{}{
		"ticket_id": ticket.TicketID,
		"status":    ticket.Status,
		"issue":     ticket.Issue,
	}, nil
}
