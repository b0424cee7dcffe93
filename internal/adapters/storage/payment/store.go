package payment

import (
	"context"

	domain "clubhouse/internal/domain/payment"
)

// Store persists Payment collections. Active-season scoping is applied
// by the application layer.
type Store interface {
	List(ctx context.Context) ([]domain.Payment, error)
	ListBySeason(ctx context.Context, season string) ([]domain.Payment, error)
	Save(ctx context.Context, value domain.Payment) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Payment) error
}
