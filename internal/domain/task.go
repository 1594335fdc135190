package domain

import (
	"strings"
)

// TaskStatus represents the completion state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task represents one unit of work tracked by the registry.
// ID is assigned by the store and never changes for the lifetime of the task.
// A nil DueDate means the task has no due date.
type Task struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *uint64    `json:"due_date,omitempty"`
}

// NewTask creates a new pending Task with the given ID and fields.
// Returns a ValidationError if the title or description is empty.
func NewTask(id uint64, title, description string, dueDate *uint64) (Task, error) {
	if err := ValidateTaskFields(title, description); err != nil {
		return Task{}, err
	}

	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		DueDate:     copyDueDate(dueDate),
	}, nil
}

// ValidateTaskFields checks the client-supplied fields shared by create and update.
// The due date is optional and is not validated.
func ValidateTaskFields(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}

	if strings.TrimSpace(description) == "" {
		return NewValidationError("description", "cannot be empty", ErrEmptyDescription)
	}

	return nil
}

// Validate checks if the Task has valid data.
func (t Task) Validate() error {
	if t.ID == 0 {
		return NewValidationError("id", "must be positive", ErrInvalidID)
	}

	if err := ValidateTaskFields(t.Title, t.Description); err != nil {
		return err
	}

	if !t.Status.IsValid() {
		return NewValidationError("status", "is not a known status", ErrInvalidTaskStatus)
	}

	return nil
}

// Clone returns a copy of the task that shares no memory with the original.
func (t Task) Clone() Task {
	t.DueDate = copyDueDate(t.DueDate)
	return t
}

// IsValid reports whether s is one of the known task statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// ParseTaskStatus converts a string into a TaskStatus, case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", NewValidationError("status", "must be one of pending, completed", ErrInvalidTaskStatus)
	}
	return status, nil
}

func copyDueDate(d *uint64) *uint64 {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
