package calendar

import (
	"errors"
	"strings"
	"time"
)

// Max length constants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxLocationLength    = 200
)

// Domain errors
var (
	ErrEmptyTitle      = errors.New("event title cannot be empty")
	ErrTitleTooLong    = errors.New("event title cannot exceed 200 characters")
	ErrEmptyStartDate  = errors.New("event start date is required")
	ErrEndBeforeStart  = errors.New("event end date cannot be before start date")
	ErrDescriptionLong = errors.New("event description cannot exceed 2000 characters")
	ErrLocationLong    = errors.New("event location cannot exceed 200 characters")
)

// Event represents an agenda entry (activity session, meeting, one-off
// event). Events are not season-scoped.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate,omitzero"` // zero value means single-day event
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"` // name of an EventType lookup entry
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks the event's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if e.StartDate.IsZero() {
		return ErrEmptyStartDate
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}
	if len(e.Description) > MaxDescriptionLength {
		return ErrDescriptionLong
	}
	if len(e.Location) > MaxLocationLength {
		return ErrLocationLong
	}
	return nil
}

// Contains returns true if the given date falls within the event's range.
// PRE: date is a valid time
// INVARIANT: Event fields are not mutated
func (e *Event) Contains(date time.Time) bool {
	end := e.EndDate
	if end.IsZero() {
		end = e.StartDate
	}
	d := date.Truncate(24 * time.Hour)
	start := e.StartDate.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return (d.Equal(start) || d.After(start)) && (d.Equal(end) || d.Before(end))
}
