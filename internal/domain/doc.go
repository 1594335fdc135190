// Package domain contains the core business entities and validation rules of the
// task registry: the Task record, its status values and the errors raised when
// a task is built from invalid input. It is independent of storage and transport.
package domain
