package activity

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("activity name cannot be empty")
	ErrNegativePrice = errors.New("activity price cannot be negative")
)

// Activity represents something the association offers during a season
// (a sport, a workshop, a class). Members enroll per season.
type Activity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	MemberIDs   []string  `json:"memberIds"`
	Season      string    `json:"season"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks if the Activity has valid data.
// PRE: Activity struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if a.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// HasMember returns true if the given member is enrolled in this activity.
// INVARIANT: Activity fields are not mutated
func (a *Activity) HasMember(memberID string) bool {
	for _, id := range a.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
