package task

import (
	"context"

	domain "clubhouse/internal/domain/task"
)

// Store persists the Task collection. Tasks are season-independent.
type Store interface {
	List(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, value domain.Task) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []domain.Task) error
}
