package seasons_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/season"
)

func TestCreateCopiesActiveSeasonForward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSeason(t, testSeason("s1", "2025-2026", 2025, true))

	members := []member.Member{
		{ID: "m1", LastName: "Dupont", FirstName: "Anne", Season: "2025-2026", ActivityIDs: []string{"a1"}},
		{ID: "m2", LastName: "Martin", FirstName: "Luc", Season: "2025-2026"},
		{ID: "m0", LastName: "Ancien", FirstName: "Membre", Season: "2024-2025"},
	}
	activities := []activity.Activity{
		{ID: "a1", Name: "Judo", Price: 120, Season: "2025-2026", MemberIDs: []string{"m1"}},
	}
	if err := f.members.ReplaceAll(ctx, members); err != nil {
		t.Fatalf("seed members: %v", err)
	}
	if err := f.activities.ReplaceAll(ctx, activities); err != nil {
		t.Fatalf("seed activities: %v", err)
	}

	_, task, err := f.manager.Create(ctx, testSeason("", "2026-2027", 2026, false))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := task.Wait(ctx); err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	copied, err := f.members.ListBySeason(ctx, "2026-2027")
	if err != nil {
		t.Fatalf("ListBySeason failed: %v", err)
	}
	if len(copied) != 2 {
		t.Fatalf("expected 2 copied members, got %d", len(copied))
	}
	originals := map[string]bool{"m0": true, "m1": true, "m2": true}
	for _, m := range copied {
		if originals[m.ID] {
			t.Errorf("copied member %s kept its original id", m.FullName())
		}
		if len(m.ActivityIDs) != 0 {
			t.Errorf("copied member %s kept enrollments %v", m.FullName(), m.ActivityIDs)
		}
	}

	copiedActs, err := f.activities.ListBySeason(ctx, "2026-2027")
	if err != nil {
		t.Fatalf("ListBySeason failed: %v", err)
	}
	if len(copiedActs) != 1 {
		t.Fatalf("expected 1 copied activity, got %d", len(copiedActs))
	}
	if copiedActs[0].ID == "a1" {
		t.Error("copied activity kept its original id")
	}
	if copiedActs[0].Price != 120 {
		t.Errorf("copied activity lost its price: got %v", copiedActs[0].Price)
	}
	if len(copiedActs[0].MemberIDs) != 0 {
		t.Errorf("copied activity kept enrollments %v", copiedActs[0].MemberIDs)
	}

	// The source season is untouched.
	source, err := f.members.ListBySeason(ctx, "2025-2026")
	if err != nil {
		t.Fatalf("ListBySeason failed: %v", err)
	}
	if len(source) != 2 {
		t.Errorf("expected source members untouched, got %d", len(source))
	}
}

func TestCreateCopiesInChunks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSeason(t, testSeason("s1", "2025-2026", 2025, true))

	members := make([]member.Member, 0, 120)
	for i := 0; i < 120; i++ {
		members = append(members, member.Member{
			ID:        fmt.Sprintf("m%d", i),
			LastName:  fmt.Sprintf("Nom%03d", i),
			FirstName: "Test",
			Season:    "2025-2026",
		})
	}
	if err := f.members.ReplaceAll(ctx, members); err != nil {
		t.Fatalf("seed members: %v", err)
	}

	_, task, err := f.manager.Create(ctx, testSeason("", "2026-2027", 2026, false))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := task.Wait(waitCtx); err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	copied, err := f.members.ListBySeason(ctx, "2026-2027")
	if err != nil {
		t.Fatalf("ListBySeason failed: %v", err)
	}
	if len(copied) != 120 {
		t.Fatalf("expected 120 copied members, got %d", len(copied))
	}
	ids := make(map[string]bool, len(copied))
	for _, m := range copied {
		if ids[m.ID] {
			t.Fatalf("duplicate copied id %s", m.ID)
		}
		ids[m.ID] = true
	}
}

func TestCreateWithoutActiveSeasonCopiesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedSeason(t, testSeason("s1", "2024-2025", 2024, false))

	_, task, err := f.manager.Create(ctx, testSeason("", "2026-2027", 2026, false))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("expected the task to complete immediately")
	}
	if task.Err() != nil {
		t.Fatalf("unexpected copy error: %v", task.Err())
	}

	all, err := f.members.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no members copied, got %d", len(all))
	}

	if _, err := f.manager.Active(ctx); err == nil {
		t.Error("expected Active to fail with no active season")
	} else if err != season.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
