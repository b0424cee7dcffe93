package member

import (
	"context"

	domain "clubhouse/internal/domain/member"
)

// Store persists Member collections. Every method works on the full,
// unfiltered collection; active-season scoping is applied by the
// application layer.
type Store interface {
	List(ctx context.Context) ([]domain.Member, error)
	ListBySeason(ctx context.Context, season string) ([]domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Member) error
}
