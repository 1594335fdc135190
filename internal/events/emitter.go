package events

import (
	"context"
	"log/slog"
	"sync"
)

// InMemoryEventEmitter stores registered handlers in memory and dispatches
// events to them synchronously, in registration order.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event is still sent to all other handlers,
// and the first error encountered is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"event_type", event.Type,
		"task_id", event.TaskID,
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// LoggingEventHandler writes every event it receives to the structured log.
// It serves as the audit trail of task mutations.
type LoggingEventHandler struct {
	logger *slog.Logger
}

// NewLoggingEventHandler creates a LoggingEventHandler that logs at info level.
func NewLoggingEventHandler(logger *slog.Logger) *LoggingEventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingEventHandler{
		logger: logger.With("component", "task_audit"),
	}
}

// HandleEvent implements EventHandler.
func (h *LoggingEventHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.logger.InfoContext(ctx, "task event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Uint64("task_id", event.TaskID),
		slog.Time("created_at", event.CreatedAt))
	return nil
}
