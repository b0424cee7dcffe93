// Package seasons owns the season lifecycle: activation, creation with
// forward copy, update, deletion with cascades. It is the only writer of
// the Settings.ActiveSeason mirror.
package seasons

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/enrollment"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/season"
	"clubhouse/internal/domain/settings"
)

// SeasonStore defines the season persistence needed by the manager.
type SeasonStore interface {
	List(ctx context.Context) ([]season.Season, error)
	Save(ctx context.Context, value season.Season) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, values []season.Season) error
}

// SettingsStore defines the settings persistence needed by the manager.
type SettingsStore interface {
	Get(ctx context.Context) (settings.Settings, bool, error)
	Put(ctx context.Context, value settings.Settings) error
}

// MemberStore defines the member persistence needed by the manager.
type MemberStore interface {
	List(ctx context.Context) ([]member.Member, error)
	ReplaceAll(ctx context.Context, values []member.Member) error
}

// ActivityStore defines the activity persistence needed by the manager.
type ActivityStore interface {
	List(ctx context.Context) ([]activity.Activity, error)
	ReplaceAll(ctx context.Context, values []activity.Activity) error
}

// PaymentStore defines the payment persistence needed by the manager.
type PaymentStore interface {
	List(ctx context.Context) ([]payment.Payment, error)
	ReplaceAll(ctx context.Context, values []payment.Payment) error
}

// EnrollmentStore defines the enrollment persistence needed by the manager.
type EnrollmentStore interface {
	List(ctx context.Context) ([]enrollment.Enrollment, error)
	ReplaceAll(ctx context.Context, values []enrollment.Enrollment) error
}

// Deps holds the manager's collaborators. Lock is the store-wide mutex
// shared with the facade; the manager itself never takes it (callers
// already hold it), only spawned copy tasks do, one chunk at a time.
type Deps struct {
	Seasons     SeasonStore
	Settings    SettingsStore
	Members     MemberStore
	Activities  ActivityStore
	Payments    PaymentStore
	Enrollments EnrollmentStore
	Lock        sync.Locker
	NewID       func() string    // injectable for testing
	Now         func() time.Time // injectable for testing
}

// Manager enforces the season lifecycle rules.
// INVARIANT: at most one season has Active set at any time
type Manager struct {
	deps Deps
}

// NewManager creates a Manager.
// PRE: all stores and Lock are non-nil
func NewManager(deps Deps) *Manager {
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Manager{deps: deps}
}

// List returns every season, newest first by start date.
func (m *Manager) List(ctx context.Context) ([]season.Season, error) {
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartDate.After(all[j].StartDate)
	})
	return all, nil
}

// ActiveName returns the name of the active season. The settings mirror
// is authoritative; when it is empty the season flags are consulted.
func (m *Manager) ActiveName(ctx context.Context) (string, error) {
	prefs, _, err := m.deps.Settings.Get(ctx)
	if err != nil {
		return "", err
	}
	if prefs.ActiveSeason != "" {
		return prefs.ActiveSeason, nil
	}
	active, _, err := m.findActive(ctx)
	if err != nil {
		return "", err
	}
	return active.Name, nil
}

// Active returns the active season record.
// POST: returns season.ErrNotFound when no season is flagged active
func (m *Manager) Active(ctx context.Context) (season.Season, error) {
	active, ok, err := m.findActive(ctx)
	if err != nil {
		return season.Season{}, err
	}
	if !ok {
		return season.Season{}, season.ErrNotFound
	}
	return active, nil
}

// IsActiveCompleted reports whether the active season is completed, and
// therefore read-only for members, activities and payments.
func (m *Manager) IsActiveCompleted(ctx context.Context) (bool, error) {
	active, ok, err := m.findActive(ctx)
	if err != nil {
		return false, err
	}
	return ok && active.Completed, nil
}

// Activate makes the season with the given id the active one.
// PRE: id refers to an existing season
// POST: exactly one season is active; the Completed flag is preserved, a
// completed season may be activated for read-only consultation; the
// settings mirror points at the new active season's name
func (m *Manager) Activate(ctx context.Context, id string) error {
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return err
	}
	var target *season.Season
	for i := range all {
		all[i].Active = all[i].ID == id
		if all[i].Active {
			target = &all[i]
		}
	}
	if target == nil {
		return season.ErrNotFound
	}
	if err := m.deps.Seasons.ReplaceAll(ctx, all); err != nil {
		return err
	}
	return m.mirrorActive(ctx, target.Name)
}

// Create appends a new season, inactive and not completed, and starts a
// background forward copy of the active season's members and activities
// into it. The returned task reports copy completion; once the season
// is persisted, any failure belongs to the task, not to Create.
// PRE: value.Name is unique among existing seasons
// POST: the new season is persisted before the copy starts; copied
// entities carry fresh ids, the new season's name and no enrollments
func (m *Manager) Create(ctx context.Context, value season.Season) (season.Season, *CopyTask, error) {
	if value.ID == "" {
		value.ID = m.deps.NewID()
	}
	value.Active = false
	value.Completed = false
	if err := value.Validate(); err != nil {
		return season.Season{}, nil, err
	}
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return season.Season{}, nil, err
	}
	for _, s := range all {
		if s.Name == value.Name {
			return season.Season{}, nil, season.ErrDuplicateName
		}
	}
	if err := m.deps.Seasons.Save(ctx, value); err != nil {
		return season.Season{}, nil, err
	}

	task := &CopyTask{
		lock:       m.deps.Lock,
		members:    m.deps.Members,
		activities: m.deps.Activities,
		newID:      m.deps.NewID,
		now:        m.deps.Now,
		target:     value.Name,
		done:       make(chan struct{}),
	}
	source, ok, err := m.findActive(ctx)
	if err != nil {
		// The season is already persisted; the failed source lookup is
		// the copy's failure.
		task.err = err
		close(task.done)
		return value, task, nil
	}
	if !ok {
		// Nothing to copy from; the task completes immediately.
		close(task.done)
		return value, task, nil
	}
	task.source = source.Name
	go task.run(context.WithoutCancel(ctx))
	return value, task, nil
}

// Update replaces the season's name, dates and Completed flag. The
// Active flag is managed by Activate alone and is preserved.
// PRE: value.ID refers to an existing season
// POST: when the updated season is active, the settings mirror follows
// any rename
func (m *Manager) Update(ctx context.Context, value season.Season) error {
	if err := value.Validate(); err != nil {
		return err
	}
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range all {
		if all[i].ID != value.ID {
			if all[i].Name == value.Name {
				return season.ErrDuplicateName
			}
			continue
		}
		value.Active = all[i].Active
		all[i] = value
		found = true
	}
	if !found {
		return season.ErrNotFound
	}
	if err := m.deps.Seasons.ReplaceAll(ctx, all); err != nil {
		return err
	}
	if value.Active {
		return m.mirrorActive(ctx, value.Name)
	}
	return nil
}

// Delete removes a season and every member, activity, payment and
// enrollment belonging to it.
// PRE: the season is not active and not the last one remaining
func (m *Manager) Delete(ctx context.Context, id string) error {
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return err
	}
	var target *season.Season
	for i := range all {
		if all[i].ID == id {
			target = &all[i]
			break
		}
	}
	if target == nil {
		return season.ErrNotFound
	}
	if target.Active {
		return season.ErrActiveSeason
	}
	if len(all) == 1 {
		return season.ErrLastSeason
	}
	if err := m.cascade(ctx, target.Name); err != nil {
		return err
	}
	return m.deps.Seasons.Delete(ctx, id)
}

// cascade drops every season-scoped record of the given season, then
// prunes enrollment pairs that referenced the dropped records.
func (m *Manager) cascade(ctx context.Context, name string) error {
	members, err := m.deps.Members.List(ctx)
	if err != nil {
		return err
	}
	droppedMembers := make(map[string]bool)
	keptMembers := members[:0:0]
	for _, v := range members {
		if v.Season == name {
			droppedMembers[v.ID] = true
		} else {
			keptMembers = append(keptMembers, v)
		}
	}

	activities, err := m.deps.Activities.List(ctx)
	if err != nil {
		return err
	}
	droppedActivities := make(map[string]bool)
	keptActivities := activities[:0:0]
	for _, v := range activities {
		if v.Season == name {
			droppedActivities[v.ID] = true
		} else {
			keptActivities = append(keptActivities, v)
		}
	}

	payments, err := m.deps.Payments.List(ctx)
	if err != nil {
		return err
	}
	keptPayments := payments[:0:0]
	for _, v := range payments {
		if v.Season != name {
			keptPayments = append(keptPayments, v)
		}
	}

	pairs, err := m.deps.Enrollments.List(ctx)
	if err != nil {
		return err
	}
	pairs = enrollment.RemoveMembers(pairs, droppedMembers)
	pairs = enrollment.RemoveActivities(pairs, droppedActivities)

	if err := m.deps.Members.ReplaceAll(ctx, keptMembers); err != nil {
		return err
	}
	if err := m.deps.Activities.ReplaceAll(ctx, keptActivities); err != nil {
		return err
	}
	if err := m.deps.Payments.ReplaceAll(ctx, keptPayments); err != nil {
		return err
	}
	return m.deps.Enrollments.ReplaceAll(ctx, pairs)
}

func (m *Manager) findActive(ctx context.Context) (season.Season, bool, error) {
	all, err := m.deps.Seasons.List(ctx)
	if err != nil {
		return season.Season{}, false, err
	}
	for _, s := range all {
		if s.Active {
			return s, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (m *Manager) mirrorActive(ctx context.Context, name string) error {
	prefs, _, err := m.deps.Settings.Get(ctx)
	if err != nil {
		return err
	}
	prefs.ActiveSeason = name
	return m.deps.Settings.Put(ctx, prefs)
}
