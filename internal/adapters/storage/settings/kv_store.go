package settings

import (
	"context"
	"log/slog"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/settings"
)

// KVStore implements Store over the key-value substrate.
type KVStore struct {
	kv    kv.Store
	codec storage.Codec
	cache *storage.Cache
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates the settings store bound to the settings key.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	return &KVStore{kv: store, codec: codec, cache: cache}
}

// Get returns the stored settings.
// POST: absent record reports found=false; a corrupt record is logged,
// replaced by defaults and reported found=false so the caller re-seeds
func (s *KVStore) Get(ctx context.Context) (domain.Settings, bool, error) {
	if cached, ok := storage.CacheGet[domain.Settings](s.cache, storage.KeySettings); ok {
		return cached, true, nil
	}
	raw, ok, err := s.kv.Get(ctx, storage.KeySettings)
	if err != nil {
		return domain.Settings{}, false, err
	}
	if !ok {
		return domain.Default(), false, nil
	}
	var value domain.Settings
	if err := s.codec.Decode(raw, &value); err != nil {
		slog.Warn("corrupt settings record, resetting to defaults", "error", err)
		value = domain.Default()
		if err := s.Put(ctx, value); err != nil {
			slog.Warn("failed to self-heal settings record", "error", err)
		}
		return value, false, nil
	}
	storage.CachePut(s.cache, storage.KeySettings, value)
	return value, true, nil
}

// Put stores the settings record.
// POST: on failure the cache entry is dropped so stale data is not served
func (s *KVStore) Put(ctx context.Context, value domain.Settings) error {
	encoded, err := s.codec.Encode(value)
	if err != nil {
		s.cache.Invalidate(storage.KeySettings)
		return err
	}
	if err := s.kv.Set(ctx, storage.KeySettings, encoded); err != nil {
		s.cache.Invalidate(storage.KeySettings)
		return err
	}
	storage.CachePut(s.cache, storage.KeySettings, value)
	return nil
}
