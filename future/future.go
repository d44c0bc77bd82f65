// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Futures deliver the outcome of an asynchronous computation. A future is a
// placeholder for an outcome that may not yet be available, allowing code to
// proceed without blocking until the outcome is needed. Each future resolves
// to a result.Result, so a consumer awaiting it receives success and failure
// through the same value.
//
// The producer side of a Future typically looks as follows:
//
//	promise, future := future.New[T]()
//	go func() {
//	   promise.Fulfill(someOperation())
//	}()
//	return future
//
// Alternatively, RunAsync spawns the goroutine and captures panics in one
// step, and Resolve and Reject create futures for already-known outcomes.
package future

import (
	"github.com/0xsoniclabs/outcome/result"
)

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	C chan<- result.Result[T]
}

// Future represents a placeholder for the outcome of a computation that will
// be available in the future. It can be awaited to retrieve the outcome once
// it is fulfilled.
type Future[T any] struct {
	C <-chan result.Result[T]
}

// New initializes a linked Promise and Future pair. The Promise can be used
// to fulfill the Future, while the Future can be awaited to retrieve the
// outcome once it is available.
func New[T any]() (Promise[T], Future[T]) {
	ch := make(chan result.Result[T], 1)
	return Promise[T]{C: ch}, Future[T]{C: ch}
}

// Resolve creates a Future that is already fulfilled with a successful
// outcome holding the given value. This is useful for scenarios where the
// result is already available and no asynchronous computation is needed.
func Resolve[T any](value T) Future[T] {
	return immediate(result.Success(value))
}

// Reject creates a Future that is already fulfilled with a failed outcome
// wrapping the given error.
func Reject[T any](err error) Future[T] {
	return immediate(result.Failure[T](err))
}

func immediate[T any](outcome result.Result[T]) Future[T] {
	ch := make(chan result.Result[T], 1)
	ch <- outcome
	close(ch)
	return Future[T]{C: ch}
}

// Complete fulfills the Promise with the given outcome, making it available
// to any awaiting Future.
func (p Promise[T]) Complete(outcome result.Result[T]) {
	p.C <- outcome
	close(p.C)
}

// Fulfill fulfills the Promise from an ordinary Go result pair, producing a
// successful outcome holding value if err is nil and a failed outcome
// wrapping err otherwise.
func (p Promise[T]) Fulfill(value T, err error) {
	if err != nil {
		p.Complete(result.Failure[T](err))
		return
	}
	p.Complete(result.Success(value))
}

// Forward connects the Promise to the given Future, such that when the
// Future is fulfilled, the Promise is also fulfilled with the same outcome.
func (p Promise[T]) Forward(f Future[T]) {
	go func() {
		p.C <- <-f.C
		close(p.C)
	}()
}

// Await blocks until the Future is fulfilled and returns the contained
// outcome. Futures can only be consumed once.
func (f Future[T]) Await() result.Result[T] {
	return <-f.C
}

// Then creates a new Future by applying the given transformation to the
// value of the original Future's outcome once it is fulfilled. A failed
// outcome short-circuits: its error is propagated to the new Future and the
// transformation is not invoked.
func Then[A, B any](f Future[A], transform func(A) (B, error)) Future[B] {
	promise, future := New[B]()
	go func() {
		outcome := f.Await()
		if outcome.IsFailure() {
			promise.Complete(result.Failure[B](outcome.Err()))
			return
		}
		promise.Fulfill(transform(outcome.GetOrZero()))
	}()
	return future
}

// RunAsync invokes fn on a new goroutine and returns a Future for its
// captured outcome. It is the asynchronous counterpart of result.Run; panics
// raised by fn are captured as failed outcomes instead of terminating the
// goroutine.
func RunAsync[T any](fn func() (T, error)) Future[T] {
	promise, future := New[T]()
	go func() {
		promise.Complete(result.Run(fn))
	}()
	return future
}
