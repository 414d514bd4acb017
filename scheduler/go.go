package scheduler

import (
	"time"

	"github.com/saltfishpr/promise/timeout"
)

// Go runs every task on its own goroutine. This is the default scheduler:
// lightweight, unbounded, no pooling or concurrency limit.
type Go struct{}

func (Go) Submit(task func()) {
	go task()
}

func (Go) SubmitAfter(delay timeout.Timeout, task func()) {
	if delay.Duration() <= 0 {
		go task()
		return
	}
	time.AfterFunc(delay.Duration(), task)
}
