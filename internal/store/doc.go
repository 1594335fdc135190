// Package store defines the contract for the task collection. It abstracts
// the concrete storage from the service and transport layers so that those
// layers depend only on presence/validation semantics, not on how tasks are held.
package store
