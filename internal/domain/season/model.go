package season

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyName      = errors.New("season name cannot be empty")
	ErrEmptyStartDate = errors.New("season start date cannot be zero")
	ErrEmptyEndDate   = errors.New("season end date cannot be zero")
	ErrInvalidDates   = errors.New("season start date must be before end date")

	// Lifecycle errors surfaced by the season manager.
	ErrNotFound      = errors.New("season not found")
	ErrDuplicateName = errors.New("a season with that name already exists")
	ErrActiveSeason  = errors.New("the active season cannot be deleted")
	ErrLastSeason    = errors.New("the last remaining season cannot be deleted")
	ErrFrozen        = errors.New("the active season is completed and read-only")
)

// Season is a named membership year (e.g. "2025-2026"). Members,
// activities and payments are partitioned by season name. Exactly one
// season is active at a time; a completed season's data is read-only.
type Season struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Active    bool      `json:"active"`
	Completed bool      `json:"completed"`
}

// Validate checks if the Season has valid data.
// PRE: Season struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.StartDate.IsZero() {
		return ErrEmptyStartDate
	}
	if s.EndDate.IsZero() {
		return ErrEmptyEndDate
	}
	if !s.StartDate.Before(s.EndDate) {
		return ErrInvalidDates
	}
	return nil
}

// DefaultName returns the membership-year name for the given time,
// e.g. "2025-2026" anywhere in calendar year 2025.
func DefaultName(now time.Time) string {
	year := now.Year()
	return fmt.Sprintf("%d-%d", year, year+1)
}

// Default builds the season created on first run: the current
// membership year, September 1st through August 31st, active and not
// completed.
// PRE: id is non-empty, now is a valid time
// POST: returned season passes Validate
func Default(id string, now time.Time) Season {
	year := now.Year()
	return Season{
		ID:        id,
		Name:      DefaultName(now),
		StartDate: time.Date(year, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year+1, time.August, 31, 0, 0, 0, 0, time.UTC),
		Active:    true,
		Completed: false,
	}
}
