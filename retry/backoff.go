package retry

import (
	"time"
)

// Strategy yields the pause before the next attempt.
type Strategy interface {
	// NextBackoff returns the pause after attempt; attempt starts from 0.
	NextBackoff(attempt int) time.Duration
}

type fixedBackoff time.Duration

// FixedBackoff pauses the same duration between every attempt.
func FixedBackoff(d time.Duration) Strategy {
	return fixedBackoff(d)
}

func (f fixedBackoff) NextBackoff(attempt int) time.Duration {
	return time.Duration(f)
}

type linearBackoff time.Duration

// LinearBackoff grows the pause by d after every attempt.
func LinearBackoff(d time.Duration) Strategy {
	return linearBackoff(d)
}

func (l linearBackoff) NextBackoff(attempt int) time.Duration {
	return time.Duration(l) * time.Duration(attempt+1)
}

type exponentialBackoff struct {
	base time.Duration
	max  time.Duration
}

// ExponentialBackoff doubles the pause after every attempt, capped at max.
func ExponentialBackoff(base, max time.Duration) Strategy {
	return &exponentialBackoff{base: base, max: max}
}

func (e *exponentialBackoff) NextBackoff(attempt int) time.Duration {
	d := e.base * time.Duration(1<<attempt)
	if d > e.max {
		return e.max
	}
	return d
}
