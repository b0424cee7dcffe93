package club_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubhouse/internal/application/club"
	"clubhouse/internal/domain/calendar"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/task"
)

func taskFixture(name string) task.Task {
	return task.Task{
		Name:     name,
		Priority: task.PriorityNormal,
		Status:   task.StatusTodo,
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	app := initApp(t)
	ctx := context.Background()

	m, err := app.SaveMember(ctx, member.Member{LastName: "Dupont", FirstName: "Anne"})
	if err != nil {
		t.Fatalf("SaveMember failed: %v", err)
	}
	if _, err := app.SaveTask(ctx, taskFixture("Order equipment")); err != nil {
		t.Fatalf("SaveTask failed: %v", err)
	}

	snap, err := app.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if snap.Version != club.SnapshotVersion {
		t.Errorf("expected snapshot version %d, got %d", club.SnapshotVersion, snap.Version)
	}
	if len(snap.Members) != 1 || len(snap.Tasks) != 1 || len(snap.Seasons) != 1 {
		t.Fatalf("unexpected snapshot contents: %d members, %d tasks, %d seasons",
			len(snap.Members), len(snap.Tasks), len(snap.Seasons))
	}

	if err := app.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	cleared, err := app.Seasons(ctx)
	if err != nil {
		t.Fatalf("Seasons failed: %v", err)
	}
	if len(cleared) != 0 {
		t.Fatalf("expected no seasons after Clear, got %d", len(cleared))
	}

	if err := app.Import(ctx, snap); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	restored, err := app.Members(ctx)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(restored) != 1 || restored[0].ID != m.ID {
		t.Fatalf("expected the member restored, got %+v", restored)
	}
	prefs, err := app.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if prefs.ActiveSeason != "2025-2026" {
		t.Errorf("expected the mirror restored, got %q", prefs.ActiveSeason)
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	app := initApp(t)

	err := app.Import(context.Background(), club.Snapshot{Version: 99})
	if !errors.Is(err, club.ErrUnsupportedSnapshot) {
		t.Fatalf("expected ErrUnsupportedSnapshot, got %v", err)
	}
}

func TestImportRepairsActiveFlags(t *testing.T) {
	app := initApp(t)
	ctx := context.Background()

	snap, err := app.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	// Corrupt the snapshot: no season flagged active.
	for i := range snap.Seasons {
		snap.Seasons[i].Active = false
	}
	snap.Settings.ActiveSeason = ""

	if err := app.Import(ctx, snap); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	active, err := app.ActiveSeason(ctx)
	if err != nil {
		t.Fatalf("expected an active season after import, got %v", err)
	}
	prefs, _ := app.Settings(ctx)
	if prefs.ActiveSeason != active.Name {
		t.Errorf("mirror %q does not match active season %q", prefs.ActiveSeason, active.Name)
	}
}

func TestDatabaseInfo(t *testing.T) {
	app := initApp(t)
	ctx := context.Background()

	if _, err := app.SaveMember(ctx, member.Member{LastName: "Dupont", FirstName: "Anne"}); err != nil {
		t.Fatalf("SaveMember failed: %v", err)
	}

	info, err := app.DatabaseInfo(ctx)
	if err != nil {
		t.Fatalf("DatabaseInfo failed: %v", err)
	}
	if info.ActiveSeason != "2025-2026" {
		t.Errorf("expected active season 2025-2026, got %q", info.ActiveSeason)
	}
	if info.Counts["members"] != 1 {
		t.Errorf("expected 1 member counted, got %d", info.Counts["members"])
	}
	if info.Counts["membershipTypes"] != 2 || info.Counts["paymentMethods"] != 3 {
		t.Errorf("expected seeded lookup counts, got %+v", info.Counts)
	}
}

func TestTasksAndEvents(t *testing.T) {
	app := initApp(t)
	ctx := context.Background()

	saved, err := app.SaveTask(ctx, task.Task{Name: "Book the gym"})
	if err != nil {
		t.Fatalf("SaveTask failed: %v", err)
	}
	if saved.Priority != task.PriorityNormal || saved.Status != task.StatusTodo {
		t.Errorf("expected priority and status defaults, got %+v", saved)
	}

	if _, err := app.SaveTask(ctx, task.Task{Name: "Bad", Priority: "loud"}); err == nil {
		t.Error("expected an invalid priority to be rejected")
	}

	event, err := app.SaveEvent(ctx, calendar.Event{
		Title:     "General assembly",
		StartDate: time.Date(2025, time.November, 12, 18, 0, 0, 0, time.UTC),
		Type:      "Meeting",
	})
	if err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}
	earlier, err := app.SaveEvent(ctx, calendar.Event{
		Title:     "Season opening",
		StartDate: time.Date(2025, time.September, 6, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}

	events, err := app.Events(ctx)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 || events[0].ID != earlier.ID || events[1].ID != event.ID {
		t.Fatalf("expected events sorted by start date, got %+v", events)
	}

	if err := app.DeleteTask(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	tasks, err := app.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	for _, got := range tasks {
		if got.ID == saved.ID {
			t.Error("expected the task deleted")
		}
	}
}
