package season

import (
	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/season"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	*storage.CollectionStore[domain.Season]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates a season store bound to the seasons key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	col := storage.NewCollection[domain.Season](storage.KeySeasons, store, codec, cache)
	return &KVStore{storage.NewCollectionStore(col, func(s domain.Season) string { return s.ID })}
}
