// Package events provides types and interfaces for publishing task lifecycle events.
//
// Services emit a TaskEvent after each successful mutation without knowing which
// handlers will process it. The primary components are:
// - TaskEvent: a record of a single task change
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
package events
