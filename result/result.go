// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package result provides a generic container for the outcome of a fallible
// computation: either a success carrying a value of type T, or a failure
// wrapping an error. It gives callers a single type to pass outcomes through
// channels or containers without using panics for regular control flow, while
// offering an explicit escape hatch back into panic-based handling where a
// caller wants one.
package result

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilValue is the error raised by MustGet when a successful Result holds
// a nil value of a nilable type, making the payload unusable.
var ErrNilValue = errors.New("result: successful outcome holds a nil value")

// Result encapsulates a value along with an error. It is intended to be used
// in scenarios where a single type is needed to represent the outcome of an
// operation that can either succeed with a value of type T or fail with an
// error. A Result is immutable; its outcome is fixed at construction through
// one of the factory functions and never changes afterwards, making instances
// safe to share between concurrent readers without synchronization.
//
// The zero Result is a successful outcome holding T's zero value.
type Result[T any] struct {
	value   T
	failure *failure
}

// failure wraps the error of a failed outcome. It also serves as the case
// discriminant, so a failure wrapping a nil error is still a failure.
type failure struct {
	err error
}

// Success creates a Result representing a successful outcome with the given
// value. The value is wrapped unconditionally, including nil values of
// nilable types.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure creates a Result representing a failed outcome with the given
// error.
func Failure[T any](err error) Result[T] {
	return Result[T]{failure: &failure{err: err}}
}

// Run invokes fn on the calling goroutine and captures its outcome. A return
// with a nil error produces a successful Result holding fn's value, a non-nil
// error produces a failed Result wrapping that error, and a panic raised by
// fn is recovered and captured as a failure. A panic with an error value is
// captured verbatim, preserving its identity; any other panic value is
// wrapped in a descriptive error. Panics in goroutines started by fn are not
// recovered.
func Run[R any](fn func() (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				res = Failure[R](err)
			} else {
				res = Failure[R](fmt.Errorf("panic during execution: %v", r))
			}
		}
	}()
	value, err := fn()
	if err != nil {
		return Failure[R](err)
	}
	return Success(value)
}

// IsSuccess returns true iff the Result represents a successful outcome.
func (r Result[T]) IsSuccess() bool {
	return r.failure == nil
}

// IsFailure returns true iff the Result represents a failed outcome.
func (r Result[T]) IsFailure() bool {
	return r.failure != nil
}

// Get returns the value and error contained in the Result. Using this
// function forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

// GetOrZero returns the value of a successful outcome, or T's zero value if
// the Result is a failure. It never panics.
func (r Result[T]) GetOrZero() T {
	return r.value
}

// GetOrDefault returns the value of a successful outcome, or defaultValue if
// the Result is a failure or if the held value is a nil value of a nilable
// type. It never panics.
func (r Result[T]) GetOrDefault(defaultValue T) T {
	if r.failure != nil || isNil(r.value) {
		return defaultValue
	}
	return r.value
}

// Err returns the wrapped error of a failed outcome, or nil if the Result is
// successful.
func (r Result[T]) Err() error {
	if r.failure == nil {
		return nil
	}
	return r.failure.err
}

// MustSucceed panics with the wrapped error if the Result is a failure and
// does nothing otherwise. The error is raised with its original identity, so
// a recovered value works with errors.Is and errors.As unchanged. This is the
// one operation converting a captured failure back into panic-based control
// flow; callers choose the boundary at which to invoke it.
func (r Result[T]) MustSucceed() {
	if r.failure != nil {
		panic(r.failure.err)
	}
}

// MustGet returns the value of a successful outcome. On a failure it panics
// like MustSucceed; on a successful outcome holding a nil value of a nilable
// type it panics with ErrNilValue.
func (r Result[T]) MustGet() T {
	r.MustSucceed()
	if isNil(r.value) {
		panic(ErrNilValue)
	}
	return r.value
}

// OnSuccess invokes fn with the held value iff the Result is a successful
// outcome. It returns the Result unchanged to allow chaining.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.failure == nil {
		fn(r.value)
	}
	return r
}

// OnFailure invokes fn with the wrapped error iff the Result is a failed
// outcome. It returns the Result unchanged to allow chaining.
func (r Result[T]) OnFailure(fn func(error)) Result[T] {
	if r.failure != nil {
		fn(r.failure.err)
	}
	return r
}

// OnFailureOf invokes fn iff r is a failed outcome whose wrapped error
// matches the error category E following errors.As semantics, including
// matches found in wrapped error chains. Failures of unrelated categories
// and successful outcomes are ignored. It is a function rather than a method
// since Go methods cannot introduce additional type parameters. It returns
// the Result unchanged to allow chaining.
func OnFailureOf[E error, T any](r Result[T], fn func(E)) Result[T] {
	if r.failure != nil {
		var target E
		if errors.As(r.failure.err, &target) {
			fn(target)
		}
	}
	return r
}

// isNil reports whether value is a nil value of a nilable kind. Values of
// non-nilable kinds are never nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
