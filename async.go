package promise

import (
	"context"
	"fmt"

	"github.com/saltfishpr/promise/result"
	"github.com/saltfishpr/promise/retry"
	"github.com/saltfishpr/promise/routine"
	"github.com/saltfishpr/promise/timeout"
)

// Async submits task(p) to the scheduler and returns immediately. The task
// receives the promise so it can resolve it from the scheduled context. A
// panic in task resolves the promise to a failure wrapping ErrPanic instead
// of crashing the process.
func (p *Promise[T]) Async(task func(p *Promise[T])) *Promise[T] {
	p.scheduler().Submit(p.guarded(task))
	return p
}

// AsyncAfter is Async with the submission delayed by at least t.
func (p *Promise[T]) AsyncAfter(t timeout.Timeout, task func(p *Promise[T])) *Promise[T] {
	p.scheduler().SubmitAfter(t, p.guarded(task))
	return p
}

// AsyncOk schedules a resolution to success with val. The resolution itself
// still obeys the resolve-once rule.
func (p *Promise[T]) AsyncOk(val T) *Promise[T] {
	return p.Async(func(p *Promise[T]) {
		p.Ok(val)
	})
}

// AsyncFail schedules a resolution to failure with err.
func (p *Promise[T]) AsyncFail(err error) *Promise[T] {
	return p.Async(func(p *Promise[T]) {
		p.Fail(err)
	})
}

// When schedules an attempt to resolve the promise with fallback after t.
// If the promise resolved in the meantime the attempt is a no-op; if the
// fallback wins, a later independent resolution is the no-op. The losing
// scheduled task is not cancelled, only ignored.
func (p *Promise[T]) When(t timeout.Timeout, fallback result.Result[T]) *Promise[T] {
	p.scheduler().SubmitAfter(t, func() {
		p.Resolve(fallback)
	})
	return p
}

func (p *Promise[T]) guarded(task func(p *Promise[T])) func() {
	return func() {
		defer routine.Recover(func(r any) {
			p.Resolve(result.Fail[T](fmt.Errorf("%w: %v", ErrPanic, routine.NewRecovered(1, r).AsError())))
		})
		task(p)
	}
}

// Retry submits a task that calls fn until it succeeds or the retry budget
// is spent, and returns the promise of the final outcome. Options are the
// retry package options; a done ctx stops retrying and fails the promise
// with the context error.
func Retry[T any](ctx context.Context, fn func() (T, error), opts ...retry.Option) *Promise[T] {
	return New[T]().Async(func(p *Promise[T]) {
		p.Resolve(result.Of(retry.Do(ctx, fn, opts...)))
	})
}
