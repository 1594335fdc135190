// Package api provides the HTTP/JSON surface of the task registry.
//
// Handlers decode and validate requests, call the task service, and map its
// results to responses: absent tasks become 404, validation failures 400.
// No handler holds state of its own; they all share one service and store.
package api
