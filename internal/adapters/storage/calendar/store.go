package calendar

import (
	"context"

	domain "clubhouse/internal/domain/calendar"
)

// Store persists the calendar Event collection. Events are
// season-independent.
type Store interface {
	List(ctx context.Context) ([]domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Event) error
}
