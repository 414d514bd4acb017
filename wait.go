package promise

import (
	"context"
	"time"

	"github.com/saltfishpr/promise/timeout"
)

// Wait blocks the calling goroutine until the promise resolves. It returns
// the promise so a value access can be chained. An unresolved promise blocks
// forever; bound the wait with WaitFor or WaitContext.
func (p *Promise[T]) Wait() *Promise[T] {
	if p.cell.resolved() {
		return p
	}
	<-p.cell.doneCh()
	return p
}

// WaitFor blocks until the promise resolves or t elapses, whichever comes
// first. It neither resolves nor cancels anything and returns the promise
// either way: re-check IsResolved or Value afterwards.
func (p *Promise[T]) WaitFor(t timeout.Timeout) *Promise[T] {
	if p.cell.resolved() {
		return p
	}
	timer := time.NewTimer(t.Duration())
	defer timer.Stop()
	select {
	case <-p.cell.doneCh():
	case <-timer.C:
	}
	return p
}

// WaitContext blocks until the promise resolves or ctx is done. It returns
// nil when the promise resolved and ctx.Err() when the wait was interrupted,
// so callers can tell the two apart. Promise state is unaffected either way.
func (p *Promise[T]) WaitContext(ctx context.Context) error {
	if p.cell.resolved() {
		return nil
	}
	select {
	case <-p.cell.doneCh():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
