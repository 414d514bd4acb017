// Package promise implements a single-resolution, callback-driven promise:
// a value cell that transitions from pending to resolved exactly once and
// runs registered continuations with the resolved outcome.
//
// The cell is lock-free: resolution is a single compare-and-swap, so any
// number of goroutines may race to resolve and exactly one wins. Redundant
// resolutions are silent no-ops, never errors. Outcomes are result.Result
// values; failures are data flowing through continuations and combinators,
// not panics.
//
// Asynchronous work is handed to a scheduler.Scheduler. By default that is
// the process-wide scheduler.Default, but every promise can carry its own
// handle (NewWith), and promises derived by combinators inherit the handle
// of their source.
package promise

import (
	"fmt"

	"github.com/saltfishpr/promise/result"
	"github.com/saltfishpr/promise/scheduler"
)

// Promise is a single-resolution value cell. The creator resolves it
// (directly, from scheduled work, or through a timeout fallback) and any
// number of consumers observe the outcome through continuations, polling or
// blocking waits.
//
// A Promise must not be copied after first use.
type Promise[T any] struct {
	cell cell[T]

	// sched is the scheduler handle used by Async and When; nil means
	// scheduler.Default at submission time.
	sched scheduler.Scheduler
}

// New creates a pending promise on the process-wide default scheduler.
func New[T any]() *Promise[T] {
	return &Promise[T]{}
}

// NewWith creates a pending promise with an explicit scheduler handle.
// Promises derived from it by combinators inherit the handle. A nil s falls
// back to scheduler.Default.
func NewWith[T any](s scheduler.Scheduler) *Promise[T] {
	return &Promise[T]{sched: s}
}

// Ready creates a promise already resolved to res. Continuations registered
// on it run immediately on the registering goroutine.
func Ready[T any](res result.Result[T]) *Promise[T] {
	p := New[T]()
	p.cell.resolve(res)
	return p
}

// ReadyOk creates a promise already resolved to success with val.
func ReadyOk[T any](val T) *Promise[T] {
	return Ready(result.Ok(val))
}

// ReadyFail creates a promise already resolved to failure with err.
func ReadyFail[T any](err error) *Promise[T] {
	return Ready(result.Fail[T](err))
}

// Value returns the resolved outcome, or None while pending. It never
// blocks.
func (p *Promise[T]) Value() result.Option[result.Result[T]] {
	if !p.cell.resolved() {
		return result.None[result.Result[T]]()
	}
	return result.Some(p.cell.res)
}

// IsResolved reports whether the promise has been resolved. It never blocks.
func (p *Promise[T]) IsResolved() bool {
	return p.cell.resolved()
}

// Resolve attempts the one-time transition to res. The first caller across
// any number of concurrent attempts wins and triggers continuation
// execution; every later or losing call is a silent no-op. It returns the
// promise either way.
func (p *Promise[T]) Resolve(res result.Result[T]) *Promise[T] {
	p.cell.resolve(res)
	return p
}

// Ok resolves the promise to success with val. See Resolve.
func (p *Promise[T]) Ok(val T) *Promise[T] {
	return p.Resolve(result.Ok(val))
}

// Fail resolves the promise to failure with err. See Resolve.
func (p *Promise[T]) Fail(err error) *Promise[T] {
	return p.Resolve(result.Fail[T](err))
}

// OnResult registers fn to run exactly once with the resolved outcome.
//
// On a pending promise fn is queued and later runs on the goroutine that
// performs the winning resolve, after every continuation registered before
// it. On a resolved promise fn runs inline before OnResult returns. Either
// way fn runs on a goroutine doing promise bookkeeping: it should not block
// and should not panic.
func (p *Promise[T]) OnResult(fn func(result.Result[T])) *Promise[T] {
	p.cell.subscribe(fn)
	return p
}

// OnSuccess registers fn to run with the value if the promise resolves to
// success. See OnResult for threading and ordering.
func (p *Promise[T]) OnSuccess(fn func(T)) *Promise[T] {
	return p.OnResult(func(res result.Result[T]) {
		res.OnSuccess(fn)
	})
}

// OnFailure registers fn to run with the error if the promise resolves to
// failure. See OnResult for threading and ordering.
func (p *Promise[T]) OnFailure(fn func(error)) *Promise[T] {
	return p.OnResult(func(res result.Result[T]) {
		res.OnFailure(fn)
	})
}

// scheduler returns the effective scheduler handle.
func (p *Promise[T]) scheduler() scheduler.Scheduler {
	if p.sched != nil {
		return p.sched
	}
	return scheduler.Default()
}

func (p *Promise[T]) String() string {
	if res, ok := p.Value().Get(); ok {
		return fmt.Sprintf("Promise(%v)", res)
	}
	return "Promise()"
}
