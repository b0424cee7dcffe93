package club

import (
	"context"
	"sort"
	"strings"

	"clubhouse/internal/domain/enrollment"
	"clubhouse/internal/domain/member"
)

// Members returns the active season's members, enrollments filled in,
// sorted by last then first name.
func (a *App) Members(ctx context.Context) ([]member.Member, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, false)
	if err != nil {
		return nil, err
	}
	scoped, err := a.members.ListBySeason(ctx, name)
	if err != nil {
		return nil, err
	}
	pairs, err := a.enrollments.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range scoped {
		scoped[i].ActivityIDs = enrollment.ActivityIDsFor(pairs, scoped[i].ID)
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return strings.ToLower(scoped[i].FullName()) < strings.ToLower(scoped[j].FullName())
	})
	return scoped, nil
}

// SaveMember creates or updates a member. A member without a season is
// stamped with the active one; an explicitly supplied season is kept.
// The ActivityIDs on the input are taken as the member's wanted
// enrollments and reconciled into the enrollment set; the stored record
// never carries them.
// PRE: the active season is not completed
// POST: the returned member carries its derived enrollments
func (a *App) SaveMember(ctx context.Context, value member.Member) (member.Member, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, true)
	if err != nil {
		return member.Member{}, err
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
		return member.Member{}, err
	}

	wanted := value.ActivityIDs
	value.ActivityIDs = nil
	if err := a.members.Save(ctx, value); err != nil {
		return member.Member{}, err
	}

	pairs, err := a.enrollments.List(ctx)
	if err != nil {
		return member.Member{}, err
	}
	pairs = enrollment.ReplaceForMember(pairs, value.ID, wanted)
	if err := a.enrollments.ReplaceAll(ctx, pairs); err != nil {
		return member.Member{}, err
	}

	value.ActivityIDs = enrollment.ActivityIDsFor(pairs, value.ID)
	return value, nil
}

// DeleteMember removes a member, their payments and their enrollments.
// Deleting an absent id is a no-op.
// PRE: the active season is not completed
func (a *App) DeleteMember(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.activeSeason(ctx, true); err != nil {
		return err
	}
	if err := a.members.Delete(ctx, id); err != nil {
		return err
	}

	payments, err := a.payments.List(ctx)
	if err != nil {
		return err
	}
	kept := payments[:0:0]
	for _, p := range payments {
		if p.MemberID != id {
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
	pruned := enrollment.RemoveMembers(pairs, map[string]bool{id: true})
	if len(pruned) != len(pairs) {
		return a.enrollments.ReplaceAll(ctx, pruned)
	}
	return nil
}
