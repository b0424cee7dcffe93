package club

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/calendar"
	"clubhouse/internal/domain/enrollment"
	"clubhouse/internal/domain/lookup"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/season"
	"clubhouse/internal/domain/settings"
	"clubhouse/internal/domain/task"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// ErrUnsupportedSnapshot rejects imports written by an unknown format
// version.
var ErrUnsupportedSnapshot = errors.New("unsupported snapshot version")

// Snapshot is a full backup of every collection plus the settings
// record. Members and activities are stored without derived enrollment
// lists; the pair set carries the relationship.
type Snapshot struct {
	Version         int                     `json:"version"`
	ExportedAt      time.Time               `json:"exportedAt"`
	Members         []member.Member         `json:"members"`
	Activities      []activity.Activity     `json:"activities"`
	Payments        []payment.Payment       `json:"payments"`
	Tasks           []task.Task             `json:"tasks"`
	Events          []calendar.Event        `json:"events"`
	MembershipTypes []lookup.MembershipType `json:"membershipTypes"`
	PaymentMethods  []lookup.PaymentMethod  `json:"paymentMethods"`
	EventTypes      []lookup.EventType      `json:"eventTypes"`
	Seasons         []season.Season         `json:"seasons"`
	Enrollments     []enrollment.Enrollment `json:"enrollments"`
	Settings        settings.Settings       `json:"settings"`
}

// Export captures every collection in one snapshot.
func (a *App) Export(ctx context.Context) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{Version: SnapshotVersion, ExportedAt: a.now()}
	var err error
	if snap.Members, err = a.members.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Activities, err = a.activities.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Payments, err = a.payments.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Tasks, err = a.tasks.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Events, err = a.events.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.MembershipTypes, err = a.lookups.MembershipTypes(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.PaymentMethods, err = a.lookups.PaymentMethods(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.EventTypes, err = a.lookups.EventTypes(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Seasons, err = a.seasonStore.List(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Enrollments, err = a.enrollments.List(ctx); err != nil {
		return Snapshot{}, err
	}
	prefs, _, err := a.settings.Get(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Settings = prefs
	return snap, nil
}

// Import replaces every collection with the snapshot's contents, then
// repairs the single-active-season invariant and the settings mirror.
// When the substrate supports batch writes the whole import is one
// transaction.
// PRE: snap.Version matches SnapshotVersion
func (a *App) Import(ctx context.Context, snap Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if snap.Version != SnapshotVersion {
		return ErrUnsupportedSnapshot
	}

	repairActiveFlags(snap.Seasons)
	activeName := ""
	for _, s := range snap.Seasons {
		if s.Active {
			activeName = s.Name
			break
		}
	}
	snap.Settings.ActiveSeason = activeName

	values := map[string]string{}
	encode := func(key string, v any) {
		if values == nil {
			return
		}
		encoded, err := a.codec.Encode(v)
		if err != nil {
			values = nil
			return
		}
		values[key] = encoded
	}
	encode(storage.KeyMembers, emptyNotNil(snap.Members))
	encode(storage.KeyActivities, emptyNotNil(snap.Activities))
	encode(storage.KeyPayments, emptyNotNil(snap.Payments))
	encode(storage.KeyTasks, emptyNotNil(snap.Tasks))
	encode(storage.KeyEvents, emptyNotNil(snap.Events))
	encode(storage.KeyMembershipTypes, emptyNotNil(snap.MembershipTypes))
	encode(storage.KeyPaymentMethods, emptyNotNil(snap.PaymentMethods))
	encode(storage.KeyEventTypes, emptyNotNil(snap.EventTypes))
	encode(storage.KeySeasons, emptyNotNil(snap.Seasons))
	encode(storage.KeyEnrollments, emptyNotNil(snap.Enrollments))
	encode(storage.KeySettings, snap.Settings)

	batcher, ok := a.substrate.(kv.Batcher)
	if ok && values != nil {
		if err := batcher.SetMany(ctx, values); err != nil {
			return err
		}
		a.cache.InvalidateAll()
		slog.Info("snapshot imported", "seasons", len(snap.Seasons), "members", len(snap.Members))
		return nil
	}

	// No batch support: write collection by collection.
	if err := a.members.ReplaceAll(ctx, snap.Members); err != nil {
		return err
	}
	if err := a.activities.ReplaceAll(ctx, snap.Activities); err != nil {
		return err
	}
	if err := a.payments.ReplaceAll(ctx, snap.Payments); err != nil {
		return err
	}
	if err := a.tasks.ReplaceAll(ctx, snap.Tasks); err != nil {
		return err
	}
	if err := a.events.ReplaceAll(ctx, snap.Events); err != nil {
		return err
	}
	if err := a.lookups.ReplaceMembershipTypes(ctx, snap.MembershipTypes); err != nil {
		return err
	}
	if err := a.lookups.ReplacePaymentMethods(ctx, snap.PaymentMethods); err != nil {
		return err
	}
	if err := a.lookups.ReplaceEventTypes(ctx, snap.EventTypes); err != nil {
		return err
	}
	if err := a.seasonStore.ReplaceAll(ctx, snap.Seasons); err != nil {
		return err
	}
	if err := a.enrollments.ReplaceAll(ctx, snap.Enrollments); err != nil {
		return err
	}
	if err := a.settings.Put(ctx, snap.Settings); err != nil {
		return err
	}
	a.cache.InvalidateAll()
	slog.Info("snapshot imported", "seasons", len(snap.Seasons), "members", len(snap.Members))
	return nil
}

// Clear wipes every collection, the settings record and the cache.
func (a *App) Clear(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, key := range storage.CollectionKeys {
		if err := a.substrate.Delete(ctx, key); err != nil {
			return err
		}
	}
	if err := a.substrate.Delete(ctx, storage.KeySettings); err != nil {
		return err
	}
	a.cache.InvalidateAll()
	slog.Warn("store cleared")
	return nil
}

// Info summarizes the store: format version, active season, size of
// each collection.
type Info struct {
	Version      int            `json:"version"`
	ActiveSeason string         `json:"activeSeason"`
	Counts       map[string]int `json:"counts"`
}

// DatabaseInfo reports the store summary.
func (a *App) DatabaseInfo(ctx context.Context) (Info, error) {
	snap, err := a.Export(ctx)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Version:      SnapshotVersion,
		ActiveSeason: snap.Settings.ActiveSeason,
		Counts: map[string]int{
			"members":         len(snap.Members),
			"activities":      len(snap.Activities),
			"payments":        len(snap.Payments),
			"tasks":           len(snap.Tasks),
			"events":          len(snap.Events),
			"membershipTypes": len(snap.MembershipTypes),
			"paymentMethods":  len(snap.PaymentMethods),
			"eventTypes":      len(snap.EventTypes),
			"seasons":         len(snap.Seasons),
			"enrollments":     len(snap.Enrollments),
		},
	}, nil
}

// emptyNotNil keeps snapshot collections encoding as [] rather than
// null, so a later decode yields an empty slice.
func emptyNotNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
