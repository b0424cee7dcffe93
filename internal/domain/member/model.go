package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Domain errors
var (
	ErrEmptyLastName  = errors.New("member last name cannot be empty")
	ErrEmptyFirstName = errors.New("member first name cannot be empty")
	ErrNameTooLong    = errors.New("member name cannot exceed 100 characters")
	ErrInvalidEmail   = errors.New("member email must be valid")
	ErrInvalidGender  = errors.New("gender must be 'male' or 'female'")
)

// Member represents an association member. Members belong to exactly one
// season; re-enrolling for a new season produces a fresh copy.
type Member struct {
	ID             string    `json:"id"`
	LastName       string    `json:"lastName"`
	FirstName      string    `json:"firstName"`
	BirthDate      time.Time `json:"birthDate,omitzero"`
	Gender         string    `json:"gender,omitempty"`
	Address        string    `json:"address,omitempty"`
	PostalCode     string    `json:"postalCode,omitempty"`
	City           string    `json:"city,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Phone2         string    `json:"phone2,omitempty"`
	Email          string    `json:"email,omitempty"`
	Email2         string    `json:"email2,omitempty"`
	MembershipType string    `json:"membershipType,omitempty"`
	ActivityIDs    []string  `json:"activityIds"`
	Season         string    `json:"season"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Emails must contain '@' when set, names must not be empty
func (m *Member) Validate() error {
	if strings.TrimSpace(m.LastName) == "" {
		return ErrEmptyLastName
	}
	if strings.TrimSpace(m.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if len(m.LastName) > MaxNameLength || len(m.FirstName) > MaxNameLength {
		return ErrNameTooLong
	}
	if m.Email != "" && !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if m.Email2 != "" && !strings.Contains(m.Email2, "@") {
		return ErrInvalidEmail
	}
	if m.Gender != "" && m.Gender != GenderMale && m.Gender != GenderFemale {
		return ErrInvalidGender
	}
	return nil
}

// FullName returns the member's display name, last name first.
// INVARIANT: Member fields are not mutated
func (m *Member) FullName() string {
	return strings.TrimSpace(m.LastName + " " + m.FirstName)
}

// EnrolledIn returns true if the member is enrolled in the given activity.
// PRE: activityID is non-empty
// INVARIANT: Member fields are not mutated
func (m *Member) EnrolledIn(activityID string) bool {
	for _, id := range m.ActivityIDs {
		if id == activityID {
			return true
		}
	}
	return false
}
