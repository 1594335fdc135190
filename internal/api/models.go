package api

import (
	"github.com/phrazzld/task-registry/internal/domain"
)

// CreateTaskRequest defines the payload for creating a task.
// DueDate is optional; omit it or send null for "no due date".
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	DueDate     *uint64 `json:"due_date"`
}

// UpdateTaskRequest defines the payload for replacing a task's editable fields.
// An omitted or null DueDate clears the due date.
type UpdateTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	DueDate     *uint64 `json:"due_date"`
}

// SetTaskStatusRequest defines the payload for changing a task's status.
type SetTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *uint64 `json:"due_date"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}
