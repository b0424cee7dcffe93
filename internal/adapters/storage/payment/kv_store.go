package payment

import (
	"context"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/payment"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	*storage.CollectionStore[domain.Payment]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a payment store bound to the payments key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	col := storage.NewCollection[domain.Payment](storage.KeyPayments, store, codec, cache)
	return &KVStore{storage.NewCollectionStore(col, func(p domain.Payment) string { return p.ID })}
}

// ListBySeason returns payments whose season matches.
// PRE: season is non-empty
// POST: returns a filtered copy; the stored collection is untouched
func (s *KVStore) ListBySeason(ctx context.Context, season string) ([]domain.Payment, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(all))
	for _, p := range all {
		if p.Season == season {
			out = append(out, p)
		}
	}
	return out, nil
}
