// Package memory provides the in-process implementation of store.TaskStore.
//
// The whole collection and the ID counter are guarded by a single lock; there is
// no per-task locking. Tasks live only as long as the process does.
package memory
