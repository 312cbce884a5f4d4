// ABOUTME: Outcome is the tagged union returned across the repository boundary
// ABOUTME: Exactly one of the success payload or the failure details is populated

package result

import "errors"

// Failure carries the details of an Error outcome.
// Both fields are optional; an empty Message means no message was provided.
type Failure struct {
	Message string
	Cause   error
}

// Outcome is either Success{value} or Error{message, cause}.
// The zero value is not a valid outcome; build one with Success or Error.
type Outcome[T any] struct {
	value   T
	failure *Failure
}

// Success builds a successful outcome holding value
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Error builds a failed outcome. message and cause may both be empty.
func Error[T any](message string, cause error) Outcome[T] {
	return Outcome[T]{failure: &Failure{Message: message, Cause: cause}}
}

// IsSuccess reports whether the outcome is the Success variant
func (o Outcome[T]) IsSuccess() bool {
	return o.failure == nil
}

// IsError reports whether the outcome is the Error variant
func (o Outcome[T]) IsError() bool {
	return o.failure != nil
}

// Value returns the success payload. ok is false for Error outcomes,
// in which case the zero value of T is returned.
func (o Outcome[T]) Value() (value T, ok bool) {
	if o.failure != nil {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Failure returns the failure details. ok is false for Success outcomes.
func (o Outcome[T]) Failure() (failure Failure, ok bool) {
	if o.failure == nil {
		return Failure{}, false
	}
	return *o.failure, true
}

// Unwrap converts the outcome to Go's (value, error) convention.
// For an Error outcome the cause is returned when present, otherwise an
// error built from the message.
func (o Outcome[T]) Unwrap() (T, error) {
	if o.failure == nil {
		return o.value, nil
	}

	var zero T
	if o.failure.Cause != nil {
		return zero, o.failure.Cause
	}
	if o.failure.Message != "" {
		return zero, errors.New(o.failure.Message)
	}
	return zero, ErrUnknown
}

// ErrUnknown is returned by Unwrap for an Error outcome without message or cause
var ErrUnknown = errors.New("unknown error")
