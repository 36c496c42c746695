package model

import "time"

// User is an identity-store account record.
type User struct {
	UserID  string  `json:"user_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Status  string  `json:"status"` // active | suspended
	Balance float64 `json:"balance"`
}

// Transaction is a single account movement.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"` // payment | refund | deposit
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// Ticket is a support ticket opened on behalf of a user.
type Ticket struct {
	TicketID  string    `json:"ticket_id"`
	UserID    string    `json:"user_id"`
	Issue     string    `json:"issue"`
	Status    string    `json:"status"` // open | closed
	CreatedAt time.Time `json:"created_at"`
}

// ServiceStatus reports the health of downstream services.
type ServiceStatus struct {
	Status      string            `json:"status"`
	Services    map[string]string `json:"services"`
	LastUpdated time.Time         `json:"last_updated"`
}
