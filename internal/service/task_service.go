package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-registry/internal/domain"
	"github.com/phrazzld/task-registry/internal/events"
	"github.com/phrazzld/task-registry/internal/platform/logger"
	"github.com/phrazzld/task-registry/internal/store"
)

// TaskService provides task operations to request handlers.
//
// The boolean results report whether a task with the given ID exists; absence
// is not an error. Errors are validation failures (*domain.ValidationError).
type TaskService interface {
	// CreateTask adds a new pending task.
	CreateTask(ctx context.Context, title, description string, dueDate *uint64) (domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id uint64) (domain.Task, bool)

	// ListTasks returns every task, in no particular order.
	ListTasks(ctx context.Context) []domain.Task

	// UpdateTask overwrites title, description and due date of a task.
	UpdateTask(
		ctx context.Context,
		id uint64,
		title, description string,
		dueDate *uint64,
	) (domain.Task, bool, error)

	// DeleteTask removes a task and returns it.
	DeleteTask(ctx context.Context, id uint64) (domain.Task, bool)

	// SetTaskStatus changes only the status of a task.
	SetTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, bool, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store        store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService around the shared store.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
			Err:       ErrNilDependency,
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
			Err:       ErrNilDependency,
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		store:        taskStore,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

// log returns the request-scoped logger if one is present.
func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// CreateTask implements TaskService.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title, description string,
	dueDate *uint64,
) (domain.Task, error) {
	task, err := s.store.Add(title, description, dueDate)
	if err != nil {
		s.log(ctx).Debug("task rejected", "error", err)
		return domain.Task{}, NewTaskServiceError("create_task", "failed to add task", err)
	}

	s.log(ctx).Info("task created", "task_id", task.ID)
	s.publish(ctx, events.TypeTaskCreated, task)
	return task, nil
}

// GetTask implements TaskService.
func (s *taskServiceImpl) GetTask(ctx context.Context, id uint64) (domain.Task, bool) {
	task, ok := s.store.Get(id)
	if !ok {
		s.log(ctx).Debug("task not found", "task_id", id)
	}
	return task, ok
}

// ListTasks implements TaskService.
func (s *taskServiceImpl) ListTasks(ctx context.Context) []domain.Task {
	tasks := s.store.List()
	s.log(ctx).Debug("tasks listed", "count", len(tasks))
	return tasks
}

// UpdateTask implements TaskService.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uint64,
	title, description string,
	dueDate *uint64,
) (domain.Task, bool, error) {
	task, ok, err := s.store.Update(id, title, description, dueDate)
	if err != nil {
		s.log(ctx).Debug("task update rejected", "error", err, "task_id", id)
		return domain.Task{}, false, NewTaskServiceError("update_task", "failed to update task", err)
	}
	if !ok {
		s.log(ctx).Debug("task not found for update", "task_id", id)
		return domain.Task{}, false, nil
	}

	s.log(ctx).Info("task updated", "task_id", id)
	s.publish(ctx, events.TypeTaskUpdated, task)
	return task, true, nil
}

// DeleteTask implements TaskService.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uint64) (domain.Task, bool) {
	task, ok := s.store.Delete(id)
	if !ok {
		s.log(ctx).Debug("task not found for delete", "task_id", id)
		return domain.Task{}, false
	}

	s.log(ctx).Info("task deleted", "task_id", id)
	s.publish(ctx, events.TypeTaskDeleted, task)
	return task, true
}

// SetTaskStatus implements TaskService.
func (s *taskServiceImpl) SetTaskStatus(
	ctx context.Context,
	id uint64,
	status domain.TaskStatus,
) (domain.Task, bool, error) {
	task, ok, err := s.store.SetStatus(id, status)
	if err != nil {
		s.log(ctx).Debug("task status change rejected", "error", err, "task_id", id)
		return domain.Task{}, false, NewTaskServiceError("set_task_status", "failed to set status", err)
	}
	if !ok {
		s.log(ctx).Debug("task not found for status change", "task_id", id)
		return domain.Task{}, false, nil
	}

	s.log(ctx).Info("task status changed", "task_id", id, "status", status)
	s.publish(ctx, events.TypeTaskStatusChanged, task)
	return task, true, nil
}

// publish emits an event for a mutation that has already been applied.
// Failures are logged only: the store change stands regardless.
func (s *taskServiceImpl) publish(ctx context.Context, eventType string, task domain.Task) {
	event, err := events.NewTaskEvent(eventType, task.ID, task)
	if err != nil {
		s.log(ctx).Error("failed to create task event",
			"error", err,
			"event_type", eventType,
			"task_id", task.ID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to emit task event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType,
			"task_id", task.ID)
	}
}
