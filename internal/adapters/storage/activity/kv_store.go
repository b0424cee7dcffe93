package activity

import (
	"context"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/activity"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	*storage.CollectionStore[domain.Activity]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates an activity store bound to the activities key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	col := storage.NewCollection[domain.Activity](storage.KeyActivities, store, codec, cache)
	return &KVStore{storage.NewCollectionStore(col, func(a domain.Activity) string { return a.ID })}
}

// ListBySeason returns activities whose season matches.
// PRE: season is non-empty
// POST: returns a filtered copy; the stored collection is untouched
func (s *KVStore) ListBySeason(ctx context.Context, season string) ([]domain.Activity, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0, len(all))
	for _, a := range all {
		if a.Season == season {
			out = append(out, a)
		}
	}
	return out, nil
}
