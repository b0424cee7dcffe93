package club

import (
	"context"
	"sort"

	"clubhouse/internal/domain/calendar"
	"clubhouse/internal/domain/task"
)

// Tasks and calendar events are season-independent: no scoping, no
// freeze guard.

// Tasks returns every task, newest first.
func (a *App) Tasks(ctx context.Context) ([]task.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	all, err := a.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// SaveTask creates or updates a task.
func (a *App) SaveTask(ctx context.Context, value task.Task) (task.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value.ID == "" {
		value.ID = a.newID()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = a.now()
	}
	if value.Priority == "" {
		value.Priority = task.PriorityNormal
	}
	if value.Status == "" {
		value.Status = task.StatusTodo
	}
	if err := value.Validate(); err != nil {
		return task.Task{}, err
	}
	if err := a.tasks.Save(ctx, value); err != nil {
		return task.Task{}, err
	}
	return value, nil
}

// DeleteTask removes a task. Deleting an absent id is a no-op.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tasks.Delete(ctx, id)
}

// Events returns every calendar event, earliest first.
func (a *App) Events(ctx context.Context) ([]calendar.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	all, err := a.events.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartDate.Before(all[j].StartDate)
	})
	return all, nil
}

// SaveEvent creates or updates a calendar event.
func (a *App) SaveEvent(ctx context.Context, value calendar.Event) (calendar.Event, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value.ID == "" {
		value.ID = a.newID()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = a.now()
	}
	if err := value.Validate(); err != nil {
		return calendar.Event{}, err
	}
	if err := a.events.Save(ctx, value); err != nil {
		return calendar.Event{}, err
	}
	return value, nil
}

// DeleteEvent removes a calendar event. Deleting an absent id is a no-op.
func (a *App) DeleteEvent(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.events.Delete(ctx, id)
}
