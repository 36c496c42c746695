// Package store is the in-memory identity store consumed by the support
// tools: user accounts, transactions and support tickets.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"customer-support-agents/internal/model"
)

// ErrUserNotFound is returned for lookups on unknown user IDs.
var ErrUserNotFound = errors.New("user not found")

// Store holds users, transactions and tickets behind one lock. Reads vastly
// outnumber writes (only ticket creation mutates after seeding).
type Store struct {
	mu           sync.RWMutex
	users        map[string]model.User
	transactions map[string][]model.Transaction // keyed by user ID, oldest first
	tickets      map[string]model.Ticket
}

// New creates an empty store. Call Seed to load demo accounts.
func New() *Store {
	return &Store{
		users:        make(map[string]model.User),
		transactions: make(map[string][]model.Transaction),
		tickets:      make(map[string]model.Ticket),
	}
}

// GetUser returns the account record for userID.
func (s *Store) GetUser(ctx context.Context, userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

// UserExists reports whether userID is a known account.
func (s *Store) UserExists(ctx context.Context, userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok
}

// GetTransactions returns up to limit most recent transactions for userID.
func (s *Store) GetTransactions(ctx context.Context, userID string, limit int) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, ErrUserNotFound
	}

	txns := s.transactions[userID]
	if limit <= 0 || limit > len(txns) {
		limit = len(txns)
	}

	// Newest first.
	out := make([]model.Transaction, 0, limit)
	for i := len(txns) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, txns[i])
	}
	return out, nil
}

// CreateTicket opens a support ticket for userID and returns it.
func (s *Store) CreateTicket(ctx context.Context, userID, issue string) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return model.Ticket{}, ErrUserNotFound
	}

	ticket := model.Ticket{
		TicketID:  "ticket_" + uuid.NewString(),
		UserID:    userID,
		Issue:     issue,
		Status:    "open",
		CreatedAt: time.Now(),
	}
	s.tickets[ticket.TicketID] = ticket
	return ticket, nil
}

// GetTicket returns a ticket by ID.
func (s *Store) GetTicket(ctx context.Context, ticketID string) (model.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[ticketID]
	return t, ok
}

// ServiceStatus reports downstream service health. Static in this demo
// store; a production deployment would poll real dependencies.
func (s *Store) ServiceStatus(ctx context.Context) model.ServiceStatus {
	return model.ServiceStatus{
		Status: "operational",
		Services: map[string]string{
			"api":          "online",
			"payments":     "online",
			"transactions": "online",
		},
		LastUpdated: time.Now(),
	}
}

// AddUser inserts or replaces a user record.
func (s *Store) AddUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.UserID] = user
}

// AddTransaction appends a transaction for its user.
func (s *Store) AddTransaction(txn model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[txn.UserID] = append(s.transactions[txn.UserID], txn)
}
