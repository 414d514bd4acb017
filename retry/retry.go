package retry

import (
	"context"
	"time"
)

type options struct {
	maxAttempts int
	strategy    Strategy
	shouldRetry func(err error) bool
}

// Option configures Do.
type Option func(*options)

// WithMaxAttempts bounds the total number of calls to the function.
func WithMaxAttempts(maxAttempts int) Option {
	return func(opts *options) {
		opts.maxAttempts = maxAttempts
	}
}

// WithStrategy selects the backoff strategy between attempts.
func WithStrategy(strategy Strategy) Option {
	return func(opts *options) {
		opts.strategy = strategy
	}
}

// WithShouldRetry stops retrying early when fn returns false for an error.
func WithShouldRetry(fn func(err error) bool) Option {
	return func(opts *options) {
		opts.shouldRetry = fn
	}
}

// Do calls f until it succeeds or the attempt budget is spent, pausing
// between attempts according to the configured strategy. A done context
// stops retrying and returns the context error; the error of the last
// attempt is returned otherwise.
func Do[T any](ctx context.Context, f func() (T, error), opts ...Option) (T, error) {
	o := options{
		maxAttempts: 3,
		strategy:    FixedBackoff(100 * time.Millisecond),
		shouldRetry: func(err error) bool { return true },
	}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < o.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		val, err := f()
		if err == nil {
			return val, nil
		}
		lastErr = err

		if o.shouldRetry != nil && !o.shouldRetry(err) {
			break
		}
		if attempt == o.maxAttempts-1 {
			break
		}

		select {
		case <-time.After(o.strategy.NextBackoff(attempt)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
