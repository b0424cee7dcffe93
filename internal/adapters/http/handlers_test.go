package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	"clubhouse/internal/application/club"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/season"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	substrate, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open substrate: %v", err)
	}
	t.Cleanup(func() { substrate.Close() })

	counter := 0
	app := club.New(club.Deps{
		Substrate: substrate,
		Codec:     storage.CompactCodec{},
		Cache:     storage.NewCache(storage.DefaultCacheTTL, storage.DefaultCacheSize),
		NewID: func() string {
			counter++
			return fmt.Sprintf("id-%d", counter)
		},
		Now: func() time.Time {
			return time.Date(2025, time.October, 15, 10, 0, 0, 0, time.UTC)
		},
	})
	if err := app.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return NewServer(app, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMemberRoundTrip(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/members", member.Member{LastName: "Dupont", FirstName: "Anne"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	saved := decodeBody[member.Member](t, rec)
	if saved.Season != "2025-2026" {
		t.Errorf("expected stamped season, got %q", saved.Season)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/members", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	listed := decodeBody[page[member.Member]](t, rec)
	if len(listed.Items) != 1 || listed.Total != 1 {
		t.Fatalf("expected 1 member, got %+v", listed)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/members/"+saved.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/members", nil)
	listed = decodeBody[page[member.Member]](t, rec)
	if len(listed.Items) != 0 {
		t.Fatalf("expected no members after delete, got %d", len(listed.Items))
	}
}

func TestValidationMapsToBadRequest(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/members", member.Member{FirstName: "Anne"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/members", "not an object")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestFrozenSeasonMapsToConflict(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/seasons", nil)
	all := decodeBody[[]season.Season](t, rec)
	if len(all) != 1 {
		t.Fatalf("expected 1 season, got %d", len(all))
	}
	frozen := all[0]
	frozen.Completed = true
	rec = doJSON(t, h, http.MethodPut, "/api/seasons/"+frozen.ID, frozen)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating season, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/api/members", member.Member{LastName: "Dupont", FirstName: "Anne"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on frozen season, got %d", rec.Code)
	}
}

func TestSeasonLifecycleOverHTTP(t *testing.T) {
	h := newTestServer(t)

	next := season.Season{
		Name:      "2026-2027",
		StartDate: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, time.August, 31, 0, 0, 0, 0, time.UTC),
	}
	rec := doJSON(t, h, http.MethodPost, "/api/seasons", next)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody[season.Season](t, rec)
	if created.ID == "" || created.Active {
		t.Fatalf("unexpected created season: %+v", created)
	}

	// Duplicate name refused.
	rec = doJSON(t, h, http.MethodPost, "/api/seasons", next)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d", rec.Code)
	}

	// Unknown season activation.
	rec = doJSON(t, h, http.MethodPost, "/api/seasons/missing/activate", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/seasons/"+created.ID+"/activate", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	// The old season is inactive now and can be deleted.
	rec = doJSON(t, h, http.MethodGet, "/api/seasons", nil)
	all := decodeBody[[]season.Season](t, rec)
	var oldID string
	for _, s := range all {
		if s.ID != created.ID {
			oldID = s.ID
		}
	}
	rec = doJSON(t, h, http.MethodDelete, "/api/seasons/"+oldID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// The active season itself is protected.
	rec = doJSON(t, h, http.MethodDelete, "/api/seasons/"+created.ID, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting the active season, got %d", rec.Code)
	}
}

func TestStatsAndInfo(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/members", member.Member{LastName: "Dupont", FirstName: "Anne"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	stats := decodeBody[map[string]any](t, rec)
	if stats["memberCount"] != float64(1) {
		t.Errorf("expected memberCount 1, got %v", stats["memberCount"])
	}

	rec = doJSON(t, h, http.MethodGet, "/api/info", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	info := decodeBody[club.Info](t, rec)
	if info.ActiveSeason != "2025-2026" {
		t.Errorf("expected active season 2025-2026, got %q", info.ActiveSeason)
	}
	if info.Counts["members"] != 1 {
		t.Errorf("expected 1 member counted, got %d", info.Counts["members"])
	}
}

func TestExportImportOverHTTP(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/members", member.Member{LastName: "Dupont", FirstName: "Anne"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	snap := decodeBody[club.Snapshot](t, rec)
	if len(snap.Members) != 1 {
		t.Fatalf("expected 1 member in snapshot, got %d", len(snap.Members))
	}

	rec = doJSON(t, h, http.MethodPost, "/api/import", snap)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// A bad snapshot version is a client error.
	snap.Version = 99
	rec = doJSON(t, h, http.MethodPost, "/api/import", snap)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
