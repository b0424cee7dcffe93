package enrollment

import (
	"context"

	domain "clubhouse/internal/domain/enrollment"
)

// Store persists the Member-Activity enrollment pair set.
type Store interface {
	List(ctx context.Context) ([]domain.Enrollment, error)
	ReplaceAll(ctx context.Context, values []domain.Enrollment) error
}
