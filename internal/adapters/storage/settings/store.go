package settings

import (
	"context"

	domain "clubhouse/internal/domain/settings"
)

// Store persists the singleton Settings record.
type Store interface {
	// Get returns the stored settings. The boolean is false when no
	// settings record exists yet (first run).
	Get(ctx context.Context) (domain.Settings, bool, error)
	Put(ctx context.Context, value domain.Settings) error
}
