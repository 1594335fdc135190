package memory

import (
	"log/slog"
	"math"
	"sync"

	"github.com/phrazzld/task-registry/internal/domain"
	"github.com/phrazzld/task-registry/internal/store"
)

// firstID is the ID given to the first task added to an empty store.
const firstID uint64 = 1

// TaskStore implements store.TaskStore using a map keyed by task ID.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[uint64]domain.Task
	nextID uint64
	logger *slog.Logger
}

// Compile-time check that TaskStore implements store.TaskStore.
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore.
// A nil logger falls back to slog.Default().
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[uint64]domain.Task),
		nextID: firstID,
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// Add implements store.TaskStore.
func (s *TaskStore) Add(title, description string, dueDate *uint64) (domain.Task, error) {
	if err := domain.ValidateTaskFields(title, description); err != nil {
		return domain.Task{}, err
	}

	task := s.insert(title, description, dueDate)

	s.logger.Debug("task added", slog.Uint64("task_id", task.ID))
	return task, nil
}

// insert mints an ID and stores a new pending task under the store lock.
// It panics if the ID space is exhausted.
func (s *TaskStore) insert(title, description string, dueDate *uint64) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nextID == math.MaxUint64 {
		panic(store.NewStoreError("task", "add", "cannot mint id", store.ErrIDSpaceExhausted))
	}

	task, err := domain.NewTask(s.nextID, title, description, dueDate)
	if err != nil {
		panic(store.NewStoreError("task", "add", "validated task rejected", err))
	}
	s.nextID++
	s.tasks[task.ID] = task

	return task.Clone()
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(
	id uint64,
	title, description string,
	dueDate *uint64,
) (domain.Task, bool, error) {
	if err := domain.ValidateTaskFields(title, description); err != nil {
		return domain.Task{}, false, err
	}

	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, false, nil
	}
	task.Title = title
	task.Description = description
	task.DueDate = nil
	if dueDate != nil {
		d := *dueDate
		task.DueDate = &d
	}
	s.tasks[id] = task
	s.mu.Unlock()

	s.logger.Debug("task updated", slog.Uint64("task_id", id))
	return task.Clone(), true, nil
}

// Delete implements store.TaskStore.
func (s *TaskStore) Delete(id uint64) (domain.Task, bool) {
	s.mu.Lock()
	task, ok := s.tasks[id]
	if ok {
		delete(s.tasks, id)
	}
	s.mu.Unlock()

	if !ok {
		return domain.Task{}, false
	}

	s.logger.Debug("task deleted", slog.Uint64("task_id", id))
	return task, true
}

// Get implements store.TaskStore.
func (s *TaskStore) Get(id uint64) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return domain.Task{}, false
	}
	return task.Clone(), true
}

// List implements store.TaskStore.
func (s *TaskStore) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task.Clone())
	}
	return tasks
}

// SetStatus implements store.TaskStore.
func (s *TaskStore) SetStatus(id uint64, status domain.TaskStatus) (domain.Task, bool, error) {
	if !status.IsValid() {
		return domain.Task{}, false, domain.NewValidationError(
			"status",
			"is not a known status",
			domain.ErrInvalidTaskStatus,
		)
	}

	s.mu.Lock()
	task, ok := s.tasks[id]
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, false, nil
	}
	task.Status = status
	s.tasks[id] = task
	s.mu.Unlock()

	s.logger.Debug("task status changed",
		slog.Uint64("task_id", id),
		slog.String("status", string(status)))
	return task.Clone(), true, nil
}

// Len implements store.TaskStore.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
