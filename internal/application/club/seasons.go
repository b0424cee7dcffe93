package club

import (
	"context"
	"log/slog"

	"clubhouse/internal/application/seasons"
	"clubhouse/internal/domain/lookup"
	"clubhouse/internal/domain/season"
)

// Seasons returns every season, newest first.
func (a *App) Seasons(ctx context.Context) ([]season.Season, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.List(ctx)
}

// ActiveSeason returns the season currently flagged active.
func (a *App) ActiveSeason(ctx context.Context) (season.Season, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.Active(ctx)
}

// ActivateSeason switches the active season. Activating a completed
// season is allowed: its data becomes readable but stays frozen.
func (a *App) ActivateSeason(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.Activate(ctx, id)
}

// CreateSeason appends a new season and starts the background forward
// copy of the active season's members and activities into it.
func (a *App) CreateSeason(ctx context.Context, value season.Season) (season.Season, *seasons.CopyTask, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.Create(ctx, value)
}

// UpdateSeason renames a season or changes its dates or Completed flag.
func (a *App) UpdateSeason(ctx context.Context, value season.Season) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.Update(ctx, value)
}

// DeleteSeason removes a season and everything scoped to it.
func (a *App) DeleteSeason(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.seasons.Delete(ctx, id)
}

// Init seeds first-run defaults and repairs store invariants. It is
// idempotent: each collection is seeded only when empty, and a second
// call changes nothing.
// POST: at least one season exists, exactly one season is active, the
// settings mirror names it, and the three lookup tables are non-empty
func (a *App) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	all, err := a.seasonStore.List(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		first := season.Default(a.newID(), a.now())
		if err := a.seasonStore.Save(ctx, first); err != nil {
			return err
		}
		all = []season.Season{first}
		slog.Info("seeded default season", "name", first.Name)
	}

	// Exactly one active season. None active happens after a bad import;
	// the newest one wins. More than one keeps the first encountered.
	if repaired := repairActiveFlags(all); repaired {
		if err := a.seasonStore.ReplaceAll(ctx, all); err != nil {
			return err
		}
		slog.Warn("repaired active season flags")
	}
	activeName := ""
	for _, s := range all {
		if s.Active {
			activeName = s.Name
			break
		}
	}

	prefs, _, err := a.settings.Get(ctx)
	if err != nil {
		return err
	}
	if prefs.ActiveSeason != activeName {
		prefs.ActiveSeason = activeName
		if err := a.settings.Put(ctx, prefs); err != nil {
			return err
		}
	}

	types, err := a.lookups.MembershipTypes(ctx)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		if err := a.lookups.ReplaceMembershipTypes(ctx, lookup.DefaultMembershipTypes()); err != nil {
			return err
		}
	}
	methods, err := a.lookups.PaymentMethods(ctx)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		if err := a.lookups.ReplacePaymentMethods(ctx, lookup.DefaultPaymentMethods()); err != nil {
			return err
		}
	}
	eventTypes, err := a.lookups.EventTypes(ctx)
	if err != nil {
		return err
	}
	if len(eventTypes) == 0 {
		if err := a.lookups.ReplaceEventTypes(ctx, lookup.DefaultEventTypes()); err != nil {
			return err
		}
	}
	return nil
}

// repairActiveFlags enforces the single-active invariant in place and
// reports whether anything changed.
func repairActiveFlags(all []season.Season) bool {
	if len(all) == 0 {
		return false
	}
	activeSeen := false
	repaired := false
	for i := range all {
		if !all[i].Active {
			continue
		}
		if activeSeen {
			all[i].Active = false
			repaired = true
		}
		activeSeen = true
	}
	if !activeSeen {
		// Newest season by start date becomes active.
		newest := 0
		for i := range all {
			if all[i].StartDate.After(all[newest].StartDate) {
				newest = i
			}
		}
		all[newest].Active = true
		repaired = true
	}
	return repaired
}
