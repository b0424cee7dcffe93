package club

import (
	"context"
	"sort"
	"strings"

	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/enrollment"
)

// Activities returns the active season's activities, member lists filled
// in, sorted by name.
func (a *App) Activities(ctx context.Context) ([]activity.Activity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, false)
	if err != nil {
		return nil, err
	}
	scoped, err := a.activities.ListBySeason(ctx, name)
	if err != nil {
		return nil, err
	}
	pairs, err := a.enrollments.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range scoped {
		scoped[i].MemberIDs = enrollment.MemberIDsFor(pairs, scoped[i].ID)
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return strings.ToLower(scoped[i].Name) < strings.ToLower(scoped[j].Name)
	})
	return scoped, nil
}

// SaveActivity creates or updates an activity. An activity without a
// season is stamped with the active one; an explicitly supplied season
// is kept. The MemberIDs on the input are reconciled into the
// enrollment set; the stored record never carries them.
// PRE: the active season is not completed
// POST: the returned activity carries its derived member list
func (a *App) SaveActivity(ctx context.Context, value activity.Activity) (activity.Activity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, true)
	if err != nil {
		return activity.Activity{}, err
	}
	if value.ID == "" {
		value.ID = a.newID()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = a.now()
	}
	if value.Season == "" {
		value.Season = name
	}
	if err := value.Validate(); err != nil {
		return activity.Activity{}, err
	}

	wanted := value.MemberIDs
	value.MemberIDs = nil
	if err := a.activities.Save(ctx, value); err != nil {
		return activity.Activity{}, err
	}

	pairs, err := a.enrollments.List(ctx)
	if err != nil {
		return activity.Activity{}, err
	}
	pairs = enrollment.ReplaceForActivity(pairs, value.ID, wanted)
	if err := a.enrollments.ReplaceAll(ctx, pairs); err != nil {
		return activity.Activity{}, err
	}

	value.MemberIDs = enrollment.MemberIDsFor(pairs, value.ID)
	return value, nil
}

// DeleteActivity removes an activity, its payments and its enrollments.
// Deleting an absent id is a no-op.
// PRE: the active season is not completed
func (a *App) DeleteActivity(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.activeSeason(ctx, true); err != nil {
		return err
	}
	if err := a.activities.Delete(ctx, id); err != nil {
		return err
	}

	payments, err := a.payments.List(ctx)
	if err != nil {
		return err
	}
	kept := payments[:0:0]
	for _, p := range payments {
		if p.ActivityID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(payments) {
		if err := a.payments.ReplaceAll(ctx, kept); err != nil {
			return err
		}
	}

	pairs, err := a.enrollments.List(ctx)
	if err != nil {
		return err
	}
	pruned := enrollment.RemoveActivities(pairs, map[string]bool{id: true})
	if len(pruned) != len(pairs) {
		return a.enrollments.ReplaceAll(ctx, pruned)
	}
	return nil
}
