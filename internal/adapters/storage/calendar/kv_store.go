package calendar

import (
	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/calendar"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	*storage.CollectionStore[domain.Event]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates an event store bound to the events key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	col := storage.NewCollection[domain.Event](storage.KeyEvents, store, codec, cache)
	return &KVStore{storage.NewCollectionStore(col, func(e domain.Event) string { return e.ID })}
}
