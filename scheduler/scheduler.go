// Package scheduler defines the task submission contract the promise core
// builds on, plus two ready-made implementations.
//
// A Scheduler guarantees only that submitted work eventually runs on a
// goroutine other than the submitting one, and that delayed work runs no
// earlier than the requested delay. It gives no ordering guarantee among
// independently submitted tasks and no cancellation handle.
package scheduler

import (
	"time"

	"github.com/saltfishpr/promise/timeout"
)

// Scheduler runs submitted tasks asynchronously, optionally after a minimum
// delay. Implementations must be safe for concurrent use.
type Scheduler interface {
	// Submit runs task off the caller's goroutine. It returns without blocking.
	Submit(task func())
	// SubmitAfter runs task off the caller's goroutine, no earlier than delay
	// after submission. It returns without blocking.
	SubmitAfter(delay timeout.Timeout, task func())
}

// Func adapts a plain submission function to the Scheduler interface. Delayed
// submissions are held back by a timer and then handed to the function.
//
// The common pattern is wrapping a goroutine pool:
//
//	pool := somepool.New(100)
//	scheduler.SetDefault(scheduler.Func(func(task func()) {
//	    pool.Submit(task)
//	}))
type Func func(task func())

func (f Func) Submit(task func()) {
	f(task)
}

func (f Func) SubmitAfter(delay timeout.Timeout, task func()) {
	if delay.Duration() <= 0 {
		f(task)
		return
	}
	time.AfterFunc(delay.Duration(), func() {
		f(task)
	})
}

var defaultScheduler Scheduler = Go{}

// Default returns the process-wide scheduler used by promises constructed
// without an explicit handle.
func Default() Scheduler {
	return defaultScheduler
}

// SetDefault replaces the process-wide scheduler. It panics when s is nil.
// Call it once during startup, before any promise is created.
func SetDefault(s Scheduler) {
	if s == nil {
		panic("scheduler: default scheduler is nil")
	}
	defaultScheduler = s
}
