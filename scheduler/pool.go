package scheduler

import (
	"time"

	"github.com/saltfishpr/promise/timeout"
)

// Pool bounds the number of concurrently running tasks with a semaphore.
// Submit blocks the submitting goroutine only while all slots are busy; the
// task itself always runs elsewhere. A delayed task does not hold a slot
// while its timer is pending.
type Pool struct {
	sem chan struct{}
}

// NewPool returns a Pool running at most maxWorkers tasks at once.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		panic("scheduler: maxWorkers must be positive")
	}
	return &Pool{
		sem: make(chan struct{}, maxWorkers),
	}
}

func (p *Pool) Submit(task func()) {
	p.sem <- struct{}{}
	go func() {
		defer func() { <-p.sem }()
		task()
	}()
}

func (p *Pool) SubmitAfter(delay timeout.Timeout, task func()) {
	if delay.Duration() <= 0 {
		p.Submit(task)
		return
	}
	time.AfterFunc(delay.Duration(), func() {
		p.Submit(task)
	})
}
