package routine

import (
	"time"

	"github.com/saltfishpr/promise/timeout"
)

// RunSafe calls fn on the current goroutine, recovering any panic. When fn
// panics, each cleanup is called with the panic value and the panic does not
// propagate.
func RunSafe(fn func(), cleanups ...func(r any)) {
	defer Recover(cleanups...)

	fn()
}

// GoSafe calls fn on a new goroutine, recovering any panic. When fn panics,
// each cleanup is called with the panic value and the process keeps running.
func GoSafe(fn func(), cleanups ...func(r any)) {
	go RunSafe(fn, cleanups...)
}

// RunWithTimeout runs fn on a new goroutine and waits for it to finish, at
// most until t elapses. It reports whether fn finished in time. A timed-out
// fn keeps running in the background; it is not cancelled.
func RunWithTimeout(fn func(), t timeout.Timeout) bool {
	done := make(chan struct{})

	GoSafe(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return true
	case <-time.After(t.Duration()):
		return false
	}
}
