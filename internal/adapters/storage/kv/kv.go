// Package kv provides the persistent key-value substrate beneath the
// collection stores: opaque string values addressed by string keys, no
// atomicity across keys.
package kv

import "context"

// Store is the substrate contract. Implementations report write
// failures as errors; they never swallow them.
type Store interface {
	// Get returns the value for key. The boolean is false when the key
	// is absent, which is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Batcher is an optional extension: write several keys in one shot.
// The SQLite substrate implements it with a transaction; callers that
// need best-effort grouping (import, first-run seeding) type-assert.
type Batcher interface {
	SetMany(ctx context.Context, values map[string]string) error
}
