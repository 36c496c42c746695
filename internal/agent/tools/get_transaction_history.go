package tools

import (
	"context"
	"fmt"

	"customer-support-agents/internal/store"
)

const defaultTransactionLimit = 5

// GetTransactionHistory lists the requesting user's recent transactions.
type GetTransactionHistory struct {
	store *store.Store
}

// NewGetTransactionHistory creates the transaction history tool.
func NewGetTransactionHistory(st *store.Store) *GetTransactionHistory {
	return &GetTransactionHistory{store: st}
}

func (t *GetTransactionHistory) Name() string {
	return "get_transaction_history"
}

func (t *GetTransactionHistory) Description() string {
	return "Get the current user's recent transactions, newest first. Use when the user asks about payments, transfers or account activity."
}

func (t *GetTransactionHistory) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of transactions to return (default 5).",
			},
		},
	}
}

func (t *GetTransactionHistory) Execute(ctx context.Context, userID string, params map[string]interface{}) (interface{}, error) {
	limit := defaultTransactionLimit
	// Gemini sends numbers as float64 in function call args.
	if v, ok := params["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	txns, err := t.store.GetTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get_transaction_history: %w", err)
	}

	items := make([]map[string]interface{}, 0, len(txns))
	for _, txn := range txns {
		items = append(items, map[string]interface{}{
			"transaction_id": txn.TransactionID,
			"amount":         txn.Amount,
			"type":           txn.Type,
			"description":    txn.Description,
			"created_at":     txn.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return map[string]interface{}{
		"transactions": items,
		"count":        len(items),
	}, nil
}
