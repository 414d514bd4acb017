// Package retry runs a fallible function repeatedly until it succeeds, the
// attempt budget is spent, or the context is done.
//
// Basic usage:
//
//	val, err := retry.Do(ctx, func() (string, error) {
//	    return apiCall()
//	})
//
// With options:
//
//	val, err := retry.Do(ctx, f,
//	    retry.WithMaxAttempts(5),
//	    retry.WithStrategy(retry.ExponentialBackoff(100*time.Millisecond, time.Second)),
//	    retry.WithShouldRetry(func(err error) bool {
//	        return isTransient(err)
//	    }),
//	)
//
// Available backoff strategies: FixedBackoff, LinearBackoff and
// ExponentialBackoff.
package retry
