// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package future

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xsoniclabs/outcome/result"
)

func TestNew_PromiseAndFutureAreLinked(t *testing.T) {
	promise, future := New[int]()
	promise.Fulfill(12, nil)
	require.Equal(t, 12, future.Await().GetOrZero())
}

func TestPromise_Fulfill_ErrorProducesFailedOutcome(t *testing.T) {
	issue := fmt.Errorf("test error")
	promise, future := New[int]()
	promise.Fulfill(0, issue)
	outcome := future.Await()
	require.True(t, outcome.IsFailure())
	require.ErrorIs(t, outcome.Err(), issue)
}

func TestPromise_Complete_DeliversOutcomeUnchanged(t *testing.T) {
	promise, future := New[string]()
	promise.Complete(result.Success("hello"))
	require.Equal(t, result.Success("hello"), future.Await())
}

func TestResolve_FutureIsFulfilledWithValue(t *testing.T) {
	future := Resolve("hello")
	outcome := future.Await()
	require.True(t, outcome.IsSuccess())
	require.Equal(t, "hello", outcome.GetOrZero())
}

func TestReject_FutureIsFulfilledWithError(t *testing.T) {
	issue := fmt.Errorf("test error")
	future := Reject[string](issue)
	outcome := future.Await()
	require.True(t, outcome.IsFailure())
	require.ErrorIs(t, outcome.Err(), issue)
}

func TestForward_CanBeUsedToPipelineFutures(t *testing.T) {
	promise1, future1 := New[string]()
	promise2, future2 := New[string]()

	promise2.Forward(future1)

	promise1.Fulfill("hello", nil)
	require.Equal(t, "hello", future2.Await().GetOrZero())
}

func TestThen_TransformsSuccessfulOutcome(t *testing.T) {
	promise1, future1 := New[[]int]()
	future2 := Then(future1, func(value []int) (int, error) {
		return len(value), nil
	})

	promise1.Fulfill([]int{1, 2, 3, 4, 5}, nil)
	require.Equal(t, 5, future2.Await().GetOrZero())
}

func TestThen_PropagatesFailureWithoutInvokingTransform(t *testing.T) {
	issue := fmt.Errorf("test error")
	promise1, future1 := New[int]()
	future2 := Then(future1, func(int) (int, error) {
		t.Error("transformation must not be invoked for a failed outcome")
		return 0, nil
	})

	promise1.Fulfill(0, issue)
	outcome := future2.Await()
	require.True(t, outcome.IsFailure())
	require.ErrorIs(t, outcome.Err(), issue)
}

func TestThen_CapturesTransformationError(t *testing.T) {
	issue := fmt.Errorf("test error")
	promise1, future1 := New[int]()
	future2 := Then(future1, func(int) (int, error) {
		return 0, issue
	})

	promise1.Fulfill(12, nil)
	require.ErrorIs(t, future2.Await().Err(), issue)
}

func TestRunAsync_DeliversCapturedOutcome(t *testing.T) {
	future := RunAsync(func() (int, error) {
		return 42, nil
	})
	require.Equal(t, 42, future.Await().GetOrZero())
}

func TestRunAsync_CapturesError(t *testing.T) {
	issue := fmt.Errorf("test error")
	future := RunAsync(func() (int, error) {
		return 0, issue
	})
	require.ErrorIs(t, future.Await().Err(), issue)
}

func TestRunAsync_CapturesPanicAsFailedOutcome(t *testing.T) {
	issue := fmt.Errorf("test error")
	future := RunAsync(func() (int, error) {
		panic(issue)
	})
	outcome := future.Await()
	require.True(t, outcome.IsFailure())
	require.ErrorIs(t, outcome.Err(), issue)
}
