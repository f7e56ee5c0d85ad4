// Package arith implements mathdesk's twenty arithmetic and logic
// operations as pure, stateless functions over machine scalars.
//
// Every operation validates its own inputs and reports through Result:
// a success value or a human-readable failure message. Nothing in this
// package prints, logs, or touches shared state, so any operation can
// be called from any goroutine without synchronization.
package arith

import (
	"errors"
	"fmt"
)

// Result carries the outcome of a single operation: either a computed
// value or a failure message naming the violated precondition. The zero
// Result is a failure with an empty message.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success returns a successful Result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure returns a failed Result carrying msg.
func Failure[T any](msg string) Result[T] {
	return Result[T]{message: msg}
}

// Failuref returns a failed Result with a formatted message.
func Failuref[T any](format string, args ...any) Result[T] {
	return Result[T]{message: fmt.Sprintf(format, args...)}
}

// IsSuccess reports whether the Result carries a value.
func (r Result[T]) IsSuccess() bool { return r.ok }

// Value returns the success value, or the zero value of T on failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message. Empty on success.
func (r Result[T]) Message() string { return r.message }

// Err returns nil on success, or an error carrying the failure message.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return errors.New(r.message)
}
