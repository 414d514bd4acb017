package promise

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/saltfishpr/promise/result"
)

const (
	statePending uint32 = iota
	stateResolving
	stateResolved
)

// cell is the lock-free resolve-once core of a promise: a state word driven
// by compare-and-swap, the resolved outcome, a lazily created channel for
// blocking waiters and a CAS-linked stack of pending continuations.
type cell[T any] struct {
	noCopy noCopy

	state atomic.Uint32
	done  chan struct{}
	once  sync.Once

	res result.Result[T]

	stack unsafe.Pointer // *continuation[T]
}

func (c *cell[T]) doneCh() chan struct{} {
	c.once.Do(func() {
		c.done = make(chan struct{})
	})
	return c.done
}

func (c *cell[T]) resolved() bool {
	return c.state.Load() == stateResolved
}

// resolve attempts the pending -> resolved transition. Exactly one caller
// across any number of concurrent attempts wins; every other call returns
// false and changes nothing. The winner stores res, wakes blocked waiters
// and runs the queued continuations on its own goroutine, in the order they
// were registered.
func (c *cell[T]) resolve(res result.Result[T]) bool {
	if !c.state.CompareAndSwap(statePending, stateResolving) {
		return false
	}
	c.res = res

	c.state.CompareAndSwap(stateResolving, stateResolved)
	close(c.doneCh())

	// Drain the continuation stack. Continuations pushed concurrently with
	// resolution either land here on a later pass or run inline in
	// subscribe; execOnce keeps the two paths from both firing.
	for {
		top := (*continuation[T])(atomic.SwapPointer(&c.stack, nil))
		if top == nil {
			return true
		}
		// The stack holds continuations newest first; reverse to get
		// registration order.
		var head *continuation[T]
		for top != nil {
			next := top.next
			top.next = head
			head = top
			top = next
		}
		for head != nil {
			next := head.next
			head.next = nil
			head.execOnce(res)
			head = next
		}
	}
}

// subscribe registers fn to run exactly once with the resolved outcome. On a
// resolved cell fn runs inline on the calling goroutine.
func (c *cell[T]) subscribe(fn func(result.Result[T])) {
	cont := &continuation[T]{fn: fn}
	for {
		old := (*continuation[T])(atomic.LoadPointer(&c.stack))

		if c.resolved() {
			fn(c.res)
			return
		}

		cont.next = old
		if atomic.CompareAndSwapPointer(&c.stack, unsafe.Pointer(old), unsafe.Pointer(cont)) {
			// The resolver may have drained the stack between the resolved
			// check and the push landing; double check so the continuation
			// cannot be stranded.
			if c.resolved() {
				cont.execOnce(c.res)
			}
			return
		}
	}
}

type continuation[T any] struct {
	once sync.Once

	fn   func(result.Result[T])
	next *continuation[T]
}

func (c *continuation[T]) execOnce(res result.Result[T]) {
	c.once.Do(func() {
		c.fn(res)
	})
}

// noCopy may be added to structs which must not be copied after first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

// Lock is a no-op used by the -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
