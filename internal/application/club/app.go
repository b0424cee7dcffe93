// Package club exposes the application facade: one entry point per
// operation, season scoping and freeze rules enforced before any write.
// Callers never touch stores directly.
package club

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"clubhouse/internal/adapters/storage"
	activitystore "clubhouse/internal/adapters/storage/activity"
	calendarstore "clubhouse/internal/adapters/storage/calendar"
	enrollmentstore "clubhouse/internal/adapters/storage/enrollment"
	"clubhouse/internal/adapters/storage/kv"
	lookupstore "clubhouse/internal/adapters/storage/lookup"
	memberstore "clubhouse/internal/adapters/storage/member"
	paymentstore "clubhouse/internal/adapters/storage/payment"
	seasonstore "clubhouse/internal/adapters/storage/season"
	settingsstore "clubhouse/internal/adapters/storage/settings"
	taskstore "clubhouse/internal/adapters/storage/task"
	"clubhouse/internal/application/seasons"
	"clubhouse/internal/domain/season"
	"clubhouse/internal/domain/settings"
)

// Deps holds what the facade is built from. The substrate and codec are
// kept because snapshot import and Clear operate below the entity
// stores. NewID and Now are injectable for testing.
type Deps struct {
	Substrate kv.Store
	Codec     storage.Codec
	Cache     *storage.Cache
	NewID     func() string
	Now       func() time.Time
}

// App serializes every operation behind one mutex: the facade is safe
// for concurrent callers, and season copy tasks interleave one chunk at
// a time.
type App struct {
	mu sync.Mutex

	members     *memberstore.KVStore
	activities  *activitystore.KVStore
	payments    *paymentstore.KVStore
	tasks       *taskstore.KVStore
	events      *calendarstore.KVStore
	lookups     *lookupstore.KVStore
	seasonStore *seasonstore.KVStore
	settings    *settingsstore.KVStore
	enrollments *enrollmentstore.KVStore
	seasons     *seasons.Manager

	substrate kv.Store
	codec     storage.Codec
	cache     *storage.Cache

	newID func() string
	now   func() time.Time
}

// New wires an App over a substrate. All stores share the codec and the
// cache; the season manager shares the App's mutex for its copy tasks.
// PRE: deps.Substrate and deps.Codec are non-nil
func New(deps Deps) *App {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	app := &App{
		substrate: deps.Substrate,
		codec:     deps.Codec,
		cache:     deps.Cache,
		newID:     deps.NewID,
		now:       deps.Now,
	}
	app.members = memberstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.activities = activitystore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.payments = paymentstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.tasks = taskstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.events = calendarstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.lookups = lookupstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.seasonStore = seasonstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.settings = settingsstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.enrollments = enrollmentstore.NewKVStore(deps.Substrate, deps.Codec, deps.Cache)
	app.seasons = seasons.NewManager(seasons.Deps{
		Seasons:     app.seasonStore,
		Settings:    app.settings,
		Members:     app.members,
		Activities:  app.activities,
		Payments:    app.payments,
		Enrollments: app.enrollments,
		Lock:        &app.mu,
		NewID:       app.newID,
		Now:         app.now,
	})
	return app
}

// Settings returns the preferences record, defaults when none is stored.
func (a *App) Settings(ctx context.Context) (settings.Settings, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	prefs, _, err := a.settings.Get(ctx)
	return prefs, err
}

// UpdateSettings stores theme, language and notification preferences.
// INVARIANT: the ActiveSeason mirror belongs to the season manager; the
// incoming value cannot overwrite it
func (a *App) UpdateSettings(ctx context.Context, value settings.Settings) (settings.Settings, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	current, _, err := a.settings.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	value.ActiveSeason = current.ActiveSeason
	if err := a.settings.Put(ctx, value); err != nil {
		return settings.Settings{}, err
	}
	return value, nil
}

// activeSeason returns the name records are scoped to, with writes
// refused while the active season is completed.
func (a *App) activeSeason(ctx context.Context, forWrite bool) (string, error) {
	name, err := a.seasons.ActiveName(ctx)
	if err != nil {
		return "", err
	}
	if forWrite {
		frozen, err := a.seasons.IsActiveCompleted(ctx)
		if err != nil {
			return "", err
		}
		if frozen {
			return "", season.ErrFrozen
		}
	}
	return name, nil
}
