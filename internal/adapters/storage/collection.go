package storage

import (
	"context"
	"log/slog"

	"clubhouse/internal/adapters/storage/kv"
)

// Collection persists one []T under one substrate key, reading through
// the cache and decoding via the codec.
type Collection[T any] struct {
	key   string
	kv    kv.Store
	codec Codec
	cache *Cache
}

// NewCollection wires a collection to its key.
// PRE: key is non-empty, store and codec are non-nil; cache may be nil
func NewCollection[T any](key string, store kv.Store, codec Codec, cache *Cache) *Collection[T] {
	return &Collection[T]{key: key, kv: store, codec: codec, cache: cache}
}

// Load reads the full collection.
// POST: absent key yields an empty collection; a corrupt value is
// logged, replaced by an empty collection and re-persisted (self-heal),
// never surfaced as an error
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if cached, ok := CacheGet[[]T](c.cache, c.key); ok {
		return cached, nil
	}
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	var items []T
	if err := c.codec.Decode(raw, &items); err != nil {
		slog.Warn("corrupt collection, resetting to empty", "key", c.key, "error", err)
		items = []T{}
		if err := c.Store(ctx, items); err != nil {
			slog.Warn("failed to self-heal collection", "key", c.key, "error", err)
		}
		return items, nil
	}
	if items == nil {
		items = []T{}
	}
	CachePut(c.cache, c.key, items)
	return items, nil
}

// Store writes the full collection.
// POST: on failure the cache entry is dropped and ErrWriteFailed is
// returned; the previously stored value remains readable
func (c *Collection[T]) Store(ctx context.Context, items []T) error {
	encoded, err := c.codec.Encode(items)
	if err != nil {
		c.cache.Invalidate(c.key)
		return wrapWrite(err)
	}
	if err := c.kv.Set(ctx, c.key, encoded); err != nil {
		c.cache.Invalidate(c.key)
		return wrapWrite(err)
	}
	CachePut(c.cache, c.key, items)
	return nil
}

func wrapWrite(err error) error {
	return &writeError{cause: err}
}

type writeError struct{ cause error }

func (e *writeError) Error() string { return ErrWriteFailed.Error() + ": " + e.cause.Error() }
func (e *writeError) Unwrap() error { return ErrWriteFailed }

// CollectionStore is the generic CRUD template shared by every entity
// store: upsert by id, delete by id, full replace. Season scoping and
// cascades belong to the application layer, not here.
type CollectionStore[T any] struct {
	col *Collection[T]
	id  func(T) string
}

// NewCollectionStore builds a store over a collection.
// PRE: id extracts a stable identifier from an item
func NewCollectionStore[T any](col *Collection[T], id func(T) string) *CollectionStore[T] {
	return &CollectionStore[T]{col: col, id: id}
}

// List returns the full, unfiltered collection.
func (s *CollectionStore[T]) List(ctx context.Context) ([]T, error) {
	return s.col.Load(ctx)
}

// Save upserts item by id: replaces the entry with the same id in the
// full collection, or appends it.
// POST: the collection is persisted and the cache refreshed
func (s *CollectionStore[T]) Save(ctx context.Context, item T) error {
	items, err := s.col.Load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if s.id(items[i]) == s.id(item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return s.col.Store(ctx, items)
}

// Delete removes the entry with the given id. Removing an absent id is
// a no-op, matching upsert semantics.
func (s *CollectionStore[T]) Delete(ctx context.Context, id string) error {
	items, err := s.col.Load(ctx)
	if err != nil {
		return err
	}
	out := items[:0:0]
	for _, item := range items {
		if s.id(item) != id {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return nil
	}
	return s.col.Store(ctx, out)
}

// ReplaceAll overwrites the whole collection.
func (s *CollectionStore[T]) ReplaceAll(ctx context.Context, items []T) error {
	return s.col.Store(ctx, items)
}
