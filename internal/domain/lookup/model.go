// Package lookup holds the small editable reference tables: membership
// types, payment methods and event types. They are season-independent
// and seeded with defaults on first run.
package lookup

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("lookup entry name cannot be empty")
	ErrNegativePrice = errors.New("membership type price cannot be negative")
	ErrEmptyColor    = errors.New("event type color cannot be empty")
)

// MembershipType is a membership formula with its yearly price.
type MembershipType struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Validate checks if the MembershipType has valid data.
func (m *MembershipType) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// PaymentMethod is an accepted way of paying (cash, cheque, transfer).
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks if the PaymentMethod has valid data.
func (p *PaymentMethod) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// EventType is a calendar event category with its display color.
type EventType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate checks if the EventType has valid data.
func (e *EventType) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.Color) == "" {
		return ErrEmptyColor
	}
	return nil
}

// DefaultMembershipTypes returns the membership formulas seeded on first run.
func DefaultMembershipTypes() []MembershipType {
	return []MembershipType{
		{ID: "type_1", Name: "Individual", Price: 50},
		{ID: "type_2", Name: "Family", Price: 80},
	}
}

// DefaultPaymentMethods returns the payment methods seeded on first run.
func DefaultPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "mode_1", Name: "Cash"},
		{ID: "mode_2", Name: "Cheque"},
		{ID: "mode_3", Name: "Transfer"},
	}
}

// DefaultEventTypes returns the event categories seeded on first run.
func DefaultEventTypes() []EventType {
	return []EventType{
		{ID: "evt_1", Name: "Activity", Color: "#3B82F6"},
		{ID: "evt_2", Name: "Meeting", Color: "#10B981"},
		{ID: "evt_3", Name: "Event", Color: "#8B5CF6"},
	}
}
