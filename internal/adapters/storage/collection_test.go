package storage

import (
	"context"
	"testing"
	"time"

	"clubhouse/internal/adapters/storage/kv"
	"clubhouse/internal/domain/task"
)

func openTestKV(t *testing.T) *kv.SQLite {
	t.Helper()
	s, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test substrate: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTaskStore(t *testing.T, store kv.Store) *CollectionStore[task.Task] {
	t.Helper()
	col := NewCollection[task.Task](KeyTasks, store, JSONCodec{}, nil)
	return NewCollectionStore(col, func(v task.Task) string { return v.ID })
}

func testTask(id, name string) task.Task {
	return task.Task{
		ID:        id,
		Name:      name,
		Priority:  task.PriorityNormal,
		Status:    task.StatusTodo,
		CreatedAt: time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC),
	}
}

// TestCollectionLoadMissingKey verifies an absent key yields an empty collection.
func TestCollectionLoadMissingKey(t *testing.T) {
	s := newTaskStore(t, openTestKV(t))

	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from an empty substrate, want 0", len(items))
	}
}

// TestCollectionSaveUpserts verifies save-by-id semantics.
func TestCollectionSaveUpserts(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, openTestKV(t))

	if err := s.Save(ctx, testTask("t1", "book the hall")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, testTask("t2", "order jerseys")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Same id replaces, does not append
	updated := testTask("t1", "book the hall (confirmed)")
	if err := s.Save(ctx, updated); err != nil {
		t.Fatalf("Save (update) failed: %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "book the hall (confirmed)" {
		t.Errorf("items[0].Name = %q, want updated name", items[0].Name)
	}
}

// TestCollectionDelete verifies delete-by-id and the absent-id no-op.
func TestCollectionDelete(t *testing.T) {
	ctx := context.Background()
	s := newTaskStore(t, openTestKV(t))

	if err := s.Save(ctx, testTask("t1", "a")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Delete(ctx, "t1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "unknown"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}

	items, _ := s.List(ctx)
	if len(items) != 0 {
		t.Errorf("got %d items after delete, want 0", len(items))
	}
}

// TestCollectionSelfHealsCorruptValue verifies a corrupt stored value is
// replaced by an empty collection instead of failing reads.
func TestCollectionSelfHealsCorruptValue(t *testing.T) {
	ctx := context.Background()
	substrate := openTestKV(t)
	s := newTaskStore(t, substrate)

	if err := substrate.Set(ctx, KeyTasks, "{definitely not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List on corrupt value failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items from corrupt value, want 0", len(items))
	}

	// The healed empty collection is persisted
	raw, ok, err := substrate.Get(ctx, KeyTasks)
	if err != nil || !ok {
		t.Fatalf("Get after self-heal = (ok=%v, err=%v)", ok, err)
	}
	if raw != "[]" {
		t.Errorf("healed value = %q, want %q", raw, "[]")
	}
}

// TestCollectionCacheReadThrough verifies reads are served from cache
// within the TTL and that Store refreshes the cached value.
func TestCollectionCacheReadThrough(t *testing.T) {
	ctx := context.Background()
	substrate := openTestKV(t)
	cache := NewCache(time.Minute, DefaultCacheSize)
	col := NewCollection[task.Task](KeyTasks, substrate, JSONCodec{}, cache)
	s := NewCollectionStore(col, func(v task.Task) string { return v.ID })

	if err := s.Save(ctx, testTask("t1", "a")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Poison the substrate behind the cache's back: reads must still be
	// served from the cached copy.
	if err := substrate.Set(ctx, KeyTasks, "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1 (from cache)", len(items))
	}

	// After invalidation the substrate wins again.
	cache.InvalidateAll()
	items, _ = s.List(ctx)
	if len(items) != 0 {
		t.Errorf("got %d items after invalidation, want 0", len(items))
	}
}
