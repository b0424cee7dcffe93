package task

import (
	"errors"
	"strings"
	"time"
)

// Priority constants
const (
	PriorityUrgent    = "urgent"
	PriorityImportant = "important"
	PriorityNormal    = "normal"
)

// Status constants
const (
	StatusTodo  = "todo"
	StatusDoing = "doing"
	StatusDone  = "done"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrInvalidPriority = errors.New("task priority must be 'urgent', 'important' or 'normal'")
	ErrInvalidStatus   = errors.New("task status must be 'todo', 'doing' or 'done'")
)

// Task is a committee to-do item. Tasks are not season-scoped: they stay
// visible whichever season is active.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate,omitzero"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks if the Task has valid data.
// PRE: Task struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.Priority != PriorityUrgent && t.Priority != PriorityImportant && t.Priority != PriorityNormal {
		return ErrInvalidPriority
	}
	if t.Status != StatusTodo && t.Status != StatusDoing && t.Status != StatusDone {
		return ErrInvalidStatus
	}
	return nil
}

// IsOverdue returns true if the task has a due date in the past and is not done.
// PRE: now is a valid time
// INVARIANT: Task fields are not mutated
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.DueDate.IsZero() && t.DueDate.Before(now) && t.Status != StatusDone
}
