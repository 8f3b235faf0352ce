// Package todo holds the to-do aggregate and its lifecycle rules.
package todo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Todo status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

var (
	ErrEmptyTitle      = errors.New("subtask title is required")
	ErrSubtaskNotFound = errors.New("subtask not found")
)

// Subtask is a child item embedded in exactly one Todo. It has no independent
// lifecycle, and its completion state never feeds back into the parent status.
type Subtask struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Todo is the aggregate root for a to-do and its embedded subtasks.
// Version counts writes to the aggregate and backs the optimistic-concurrency
// check applied when the subtask list is rewritten.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	DueDate     time.Time  `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Subtasks    []Subtask  `json:"subtasks"`
	Version     int32      `json:"-"`
}

// New builds a pending Todo owned by userID, due today (UTC midnight).
func New(userID uuid.UUID, title, category string) *Todo {
	now := time.Now().UTC()
	return &Todo{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Category: category,
		Status:   StatusPending,
		DueDate:  now.Truncate(24 * time.Hour),
		Subtasks: []Subtask{},
	}
}

// Complete marks the todo completed and stores the supplied timestamp
// verbatim; the caller decides what "when" means.
func (t *Todo) Complete(at time.Time) {
	t.Status = StatusCompleted
	t.CompletedAt = &at
}

// Revert returns the todo to pending unconditionally. Reverting an already
// pending todo is a no-op, so the operation is idempotent.
func (t *Todo) Revert() {
	t.Status = StatusPending
	t.CompletedAt = nil
}

// AddSubtask appends a new, uncompleted subtask. The parent status is left
// untouched.
func (t *Todo) AddSubtask(title string) (Subtask, error) {
	if title == "" {
		return Subtask{}, ErrEmptyTitle
	}
	s := Subtask{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	t.Subtasks = append(t.Subtasks, s)
	return s, nil
}

// CompleteSubtask marks the subtask with the given id completed.
func (t *Todo) CompleteSubtask(subtaskID uuid.UUID) error {
	s, err := t.findSubtask(subtaskID)
	if err != nil {
		return err
	}
	s.Completed = true
	return nil
}

// RenameSubtask replaces the subtask's title in place.
func (t *Todo) RenameSubtask(subtaskID uuid.UUID, title string) error {
	s, err := t.findSubtask(subtaskID)
	if err != nil {
		return err
	}
	s.Title = title
	return nil
}

// RemoveSubtask detaches the subtask from the parent's list.
func (t *Todo) RemoveSubtask(subtaskID uuid.UUID) error {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks = append(t.Subtasks[:i], t.Subtasks[i+1:]...)
			return nil
		}
	}
	return ErrSubtaskNotFound
}

func (t *Todo) findSubtask(subtaskID uuid.UUID) (*Subtask, error) {
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			return &t.Subtasks[i], nil
		}
	}
	return nil, ErrSubtaskNotFound
}
