package member

import (
	"context"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/member"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	*storage.CollectionStore[domain.Member]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a member store bound to the members key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	col := storage.NewCollection[domain.Member](storage.KeyMembers, store, codec, cache)
	return &KVStore{storage.NewCollectionStore(col, func(m domain.Member) string { return m.ID })}
}

// ListBySeason returns members whose season matches.
// PRE: season is non-empty
// POST: returns a filtered copy; the stored collection is untouched
func (s *KVStore) ListBySeason(ctx context.Context, season string) ([]domain.Member, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Member, 0, len(all))
	for _, m := range all {
		if m.Season == season {
			out = append(out, m)
		}
	}
	return out, nil
}
