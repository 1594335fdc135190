package store

import (
	"github.com/phrazzld/task-registry/internal/domain"
)

// TaskStore defines the interface for the task collection and its ID counter.
//
// Every method is synchronous and atomic from the caller's point of view.
// Implementations must serialize access across the whole collection, since ID
// uniqueness and monotonicity are cross-task invariants. No method returns a
// value that aliases internal state.
//
// The boolean results report presence: false means no task has the given ID,
// which is a normal outcome and never an error. The error results carry only
// validation failures (*domain.ValidationError), raised before any mutation.
type TaskStore interface {
	// Add validates the fields, mints a new ID greater than every ID issued before,
	// and stores a pending task with that ID.
	Add(title, description string, dueDate *uint64) (domain.Task, error)

	// Update overwrites title, description and due date of an existing task.
	// The status is left untouched.
	Update(id uint64, title, description string, dueDate *uint64) (domain.Task, bool, error)

	// Delete removes the task and returns it as it was before removal.
	Delete(id uint64) (domain.Task, bool)

	// Get returns the task with the given ID.
	Get(id uint64) (domain.Task, bool)

	// List returns every stored task in no particular order.
	// The result is empty, not nil, when the store holds no tasks.
	List() []domain.Task

	// SetStatus changes only the status of an existing task.
	// Returns a validation error if status is not a known value.
	SetStatus(id uint64, status domain.TaskStatus) (domain.Task, bool, error)

	// Len returns the number of stored tasks.
	Len() int
}
