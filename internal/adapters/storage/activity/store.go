package activity

import (
	"context"

	domain "clubhouse/internal/domain/activity"
)

// Store persists Activity collections. Active-season scoping is applied
// by the application layer.
type Store interface {
	List(ctx context.Context) ([]domain.Activity, error)
	ListBySeason(ctx context.Context, season string) ([]domain.Activity, error)
	Save(ctx context.Context, value domain.Activity) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Activity) error
}
