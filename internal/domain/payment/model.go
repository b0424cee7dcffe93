package payment

import (
	"errors"
	"time"
)

// Payment status constants
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// Domain errors
var (
	ErrEmptyMemberID   = errors.New("payment member id cannot be empty")
	ErrEmptyActivityID = errors.New("payment activity id cannot be empty")
	ErrNegativeAmount  = errors.New("payment amount cannot be negative")
	ErrInvalidStatus   = errors.New("payment status must be 'paid' or 'pending'")
)

// Payment records money received (or expected) from a member for an
// activity within a season.
type Payment struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"memberId"`
	ActivityID string    `json:"activityId"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paidAt,omitzero"`
	Method     string    `json:"method,omitempty"`
	Status     string    `json:"status"`
	Season     string    `json:"season"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return ErrEmptyMemberID
	}
	if p.ActivityID == "" {
		return ErrEmptyActivityID
	}
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	if p.Status != StatusPaid && p.Status != StatusPending {
		return ErrInvalidStatus
	}
	return nil
}

// IsPaid returns true if the payment has been settled.
// INVARIANT: Payment fields are not mutated
func (p *Payment) IsPaid() bool {
	return p.Status == StatusPaid
}
