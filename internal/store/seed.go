package store

import (
	"time"

	"customer-support-agents/internal/model"
)

// Seed loads the demo accounts used by the support flows.
func (s *Store) Seed() {
	now := time.Now()

	s.AddUser(model.User{
		UserID:  "user_001",
		Name:    "João Silva",
		Email:   "joao.silva@example.com",
		Balance: 1250.50,
		Status:  "active",
	})
	s.AddUser(model.User{
		UserID:  "user_002",
		Name:    "Maria Santos",
		Email:   "maria.santos@example.com",
		Balance: 3500.00,
		Status:  "active",
	})
	s.AddUser(model.User{
		UserID:  "user_003",
		Name:    "Pedro Oliveira",
		Email:   "pedro.oliveira@example.com",
		Balance: 500.25,
		Status:  "active",
	})

	s.AddTransaction(model.Transaction{
		TransactionID: "txn_001",
		UserID:        "user_001",
		Amount:        100.00,
		Type:          "payment_received",
		Description:   "Payment from customer",
		CreatedAt:     now.Add(-72 * time.Hour),
	})
	s.AddTransaction(model.Transaction{
		TransactionID: "txn_002",
		UserID:        "user_001",
		Amount:        -50.00,
		Type:          "transfer",
		Description:   "Transfer to account",
		CreatedAt:     now.Add(-48 * time.Hour),
	})
	s.AddTransaction(model.Transaction{
		TransactionID: "txn_003",
		UserID:        "user_002",
		Amount:        250.00,
		Type:          "payment_received",
		Description:   "Payment from customer",
		CreatedAt:     now.Add(-24 * time.Hour),
	})
}
