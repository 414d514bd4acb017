package promise

import "github.com/pkg/errors"

var (
	// ErrPanic marks a failure produced by a panicking asynchronous task.
	ErrPanic = errors.New("async task panic")

	// ErrTimeout is a conventional error for timeout fallbacks wired with
	// When; nothing in the core produces it on its own.
	ErrTimeout = errors.New("promise timeout")

	// ErrNoneSucceeded marks the failure AnySuccess resolves to when every
	// source promise fails, and the failure Any and AnySuccess resolve to
	// when given no sources.
	ErrNoneSucceeded = errors.New("no promise resolved successfully")
)
