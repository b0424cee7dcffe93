package season

import (
	"context"

	domain "clubhouse/internal/domain/season"
)

// Store persists the Season collection. Lifecycle rules (single active
// season, deletion guards, cascades) belong to the season manager, not
// here.
type Store interface {
	List(ctx context.Context) ([]domain.Season, error)
	Save(ctx context.Context, value domain.Season) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Season) error
}
