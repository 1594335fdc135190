// Package service provides the application-level operations on tasks.
//
// TaskService adapts the shared task store for callers that work with a request
// context: it logs each operation, delegates to the store, and publishes a task
// event after every successful mutation.
package service
