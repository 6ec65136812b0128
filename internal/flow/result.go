package flow

import (
	"errors"
	"fmt"
)

// Result is the outcome of an operation that may fail without aborting the caller, such as parsing a line of
// operator input. It is either a success carrying a value or a failure carrying an error; the failure side has
// no value to read.
//
// The zero Result is neither and behaves as a failure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

var errEmptyResult = errors.New("empty result")

// Ok wraps v as a successful [Result].
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed [Result] for err. A nil err still produces a failure.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errEmptyResult
	}
	return Result[T]{err: err}
}

// Failf returns a failed [Result] with a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](fmt.Errorf(format, args...))
}

// From adapts a conventional (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// IsFailure reports whether r holds an error instead of a value.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value and panics when r is a failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("flow: Value called on failed Result: %v", r.Err()))
	}
	return r.value
}

// Get returns the value and true on success, or the zero value and false on failure.
func (r Result[T]) Get() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return errEmptyResult
	}
	return r.err
}

// Message returns the human readable failure message, or "" on success.
func (r Result[T]) Message() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Then feeds a successful value into fn and passes failures through untouched.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Fail[U](r.Err())
	}
	return fn(r.value)
}
