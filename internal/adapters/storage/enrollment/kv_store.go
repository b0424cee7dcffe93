package enrollment

import (
	"context"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/enrollment"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	col *storage.Collection[domain.Enrollment]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates the enrollment store bound to the enrollments key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	return &KVStore{col: storage.NewCollection[domain.Enrollment](storage.KeyEnrollments, store, codec, cache)}
}

// List returns every enrollment pair.
func (s *KVStore) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.col.Load(ctx)
}

// ReplaceAll overwrites the whole pair set.
func (s *KVStore) ReplaceAll(ctx context.Context, values []domain.Enrollment) error {
	return s.col.Store(ctx, values)
}
