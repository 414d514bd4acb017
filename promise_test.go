package promise

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/saltfishpr/promise/result"
	"github.com/saltfishpr/promise/timeout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestResolveOnce_Concurrent(t *testing.T) {
	const attempts = 64

	p := New[int]()
	var fired int32
	p.OnResult(func(result.Result[int]) {
		atomic.AddInt32(&fired, 1)
	})

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			p.Ok(i)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "exactly one resolution must fire continuations")

	first, ok := p.Value().Get()
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		res, ok := p.Value().Get()
		require.True(t, ok)
		assert.Equal(t, first, res, "value must never change after resolution")
	}
}

func TestMultipleResolutionsAreIgnored(t *testing.T) {
	holder := -1
	p := New[int]().OnSuccess(func(v int) { holder = v })

	p.Ok(1)
	p.Ok(2)
	p.Ok(3)
	p.Ok(4)

	assert.Equal(t, 1, holder)
}

func TestReadyPromiseIsAlreadyResolved(t *testing.T) {
	holder := -1
	ReadyOk(123).OnSuccess(func(v int) { holder = v })
	assert.Equal(t, 123, holder)

	var failure error
	ReadyFail[int](errors.New("boom")).OnFailure(func(err error) { failure = err })
	assert.EqualError(t, failure, "boom")
}

func TestContinuationsRunInRegistrationOrder(t *testing.T) {
	var order []int
	p := New[int]()
	for i := 0; i < 5; i++ {
		i := i
		p.OnResult(func(result.Result[int]) {
			order = append(order, i)
		})
	}

	// Resolving from this goroutine runs every queued continuation
	// synchronously, so order is complete when Ok returns.
	p.Ok(1)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestContinuationAfterResolutionRunsImmediately(t *testing.T) {
	p := New[int]()
	p.Ok(1)

	holder := -1
	p.OnSuccess(func(v int) { holder = v })

	assert.Equal(t, 1, holder)
}

func TestContinuationsRunOnResolvingGoroutine(t *testing.T) {
	registering := goroutineID()

	var cbGID, resolverGID int64
	p := New[int]().OnResult(func(result.Result[int]) {
		cbGID = goroutineID()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		resolverGID = goroutineID()
		p.Ok(1)
	}()
	<-done

	assert.Equal(t, resolverGID, cbGID, "queued continuation must run on the resolving goroutine")
	assert.NotEqual(t, registering, cbGID)
}

func TestValue(t *testing.T) {
	p := New[int]()
	assert.False(t, p.Value().IsPresent())
	assert.False(t, p.IsResolved())

	p.Ok(42)

	res, ok := p.Value().Get()
	require.True(t, ok)
	assert.Equal(t, 42, res.Value())
	assert.True(t, p.IsResolved())
}

func TestOnSuccessAndOnFailureRouting(t *testing.T) {
	t.Run("success skips failure continuations", func(t *testing.T) {
		succeeded, failed := false, false
		New[int]().
			OnSuccess(func(int) { succeeded = true }).
			OnFailure(func(error) { failed = true }).
			Ok(1)

		assert.True(t, succeeded)
		assert.False(t, failed)
	})

	t.Run("failure skips success continuations", func(t *testing.T) {
		succeeded, failed := false, false
		New[int]().
			OnSuccess(func(int) { succeeded = true }).
			OnFailure(func(error) { failed = true }).
			Fail(errors.New("boom"))

		assert.False(t, succeeded)
		assert.True(t, failed)
	})
}

func TestAsync(t *testing.T) {
	submitter := goroutineID()

	var taskGID int64
	p := New[int]().Async(func(p *Promise[int]) {
		taskGID = goroutineID()
		p.Ok(1)
	})

	p.Wait()

	res, ok := p.Value().Get()
	require.True(t, ok)
	assert.Equal(t, 1, res.Value())
	assert.NotEqual(t, submitter, taskGID, "task ran on the submitting goroutine")
}

func TestAsync_PanicResolvesToFailure(t *testing.T) {
	p := New[int]().Async(func(*Promise[int]) {
		panic("boom")
	})

	p.Wait()

	res, ok := p.Value().Get()
	require.True(t, ok)
	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), ErrPanic)
	assert.Contains(t, res.Err().Error(), "boom")
}

func TestAsyncOkAndAsyncFail(t *testing.T) {
	p := New[int]().AsyncOk(7)
	p.Wait()
	res7, _ := p.Value().Get()
	assert.Equal(t, 7, res7.Value())

	cause := errors.New("boom")
	q := New[int]().AsyncFail(cause)
	q.Wait()
	res, _ := q.Value().Get()
	assert.ErrorIs(t, res.Err(), cause)
}

func TestAsyncAfter(t *testing.T) {
	start := time.Now()
	p := New[int]().AsyncAfter(timeout.Millis(50), func(p *Promise[int]) {
		p.Ok(123)
	})

	p.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond, "delayed task ran too early")
	res, _ := p.Value().Get()
	assert.Equal(t, 123, res.Value())
}

func TestWhen_FallbackResolvesPendingPromise(t *testing.T) {
	p := New[int]().When(timeout.Millis(20), result.Fail[int](ErrTimeout))

	p.Wait()

	res, _ := p.Value().Get()
	assert.ErrorIs(t, res.Err(), ErrTimeout)
}

func TestWhen_FallbackIsNoOpAfterNormalResolution(t *testing.T) {
	p := New[int]().When(timeout.Millis(20), result.Fail[int](ErrTimeout))
	p.Ok(5)

	// Let the scheduled fallback fire and lose.
	time.Sleep(60 * time.Millisecond)

	res, _ := p.Value().Get()
	require.True(t, res.IsSuccess())
	assert.Equal(t, 5, res.Value())
}

func TestWait_ReturnsImmediatelyWhenResolved(t *testing.T) {
	p := ReadyOk(1)
	assert.Same(t, p, p.Wait())
}

func TestWait_BlocksUntilResolution(t *testing.T) {
	p := New[int]()
	go func() {
		time.Sleep(20 * time.Millisecond)
		p.Ok(1)
	}()

	p.Wait()

	assert.True(t, p.IsResolved())
}

func TestWaitFor_ReturnsOnExpiry(t *testing.T) {
	gate := make(chan struct{})
	done := make(chan struct{})
	p := New[int]()
	go func() {
		defer close(done)
		<-gate
		p.Ok(1)
	}()

	p.WaitFor(timeout.Millis(20))

	assert.False(t, p.IsResolved(), "promise resolved before the bounded wait expired")

	close(gate)
	<-done
	p.Wait()
	assert.True(t, p.IsResolved())
}

func TestWaitFor_ReturnsOnResolution(t *testing.T) {
	p := New[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Ok(1)
	}()

	p.WaitFor(timeout.Seconds(5))

	assert.True(t, p.IsResolved())
}

func TestWaitContext(t *testing.T) {
	t.Run("returns nil on resolution", func(t *testing.T) {
		p := New[int]()
		go func() {
			time.Sleep(10 * time.Millisecond)
			p.Ok(1)
		}()

		assert.NoError(t, p.WaitContext(context.Background()))
	})

	t.Run("reports interruption distinctly", func(t *testing.T) {
		p := New[int]()
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := p.WaitContext(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, p.IsResolved(), "interruption must not affect promise state")
	})
}

func TestString(t *testing.T) {
	p := New[int]()
	assert.Equal(t, "Promise()", p.String())

	p.Ok(42)
	assert.Equal(t, "Promise(Success(42))", p.String())
}

// goroutineID parses the goroutine number out of the runtime.Stack header.
func goroutineID() int64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	fields := strings.Fields(string(buf))
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		panic(err)
	}
	return id
}
