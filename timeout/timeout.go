// Package timeout provides the immutable duration descriptor accepted by
// scheduling and blocking-wait operations.
package timeout

import (
	"fmt"
	"time"
)

// Timeout is an immutable bounded duration. The zero value means "no delay".
type Timeout struct {
	d time.Duration
}

// Of returns a Timeout spanning d. Negative durations are clamped to zero.
func Of(d time.Duration) Timeout {
	if d < 0 {
		d = 0
	}
	return Timeout{d: d}
}

// Millis returns a Timeout spanning n milliseconds.
func Millis(n int64) Timeout {
	return Of(time.Duration(n) * time.Millisecond)
}

// Seconds returns a Timeout spanning n seconds.
func Seconds(n int64) Timeout {
	return Of(time.Duration(n) * time.Second)
}

// Duration returns the spanned duration.
func (t Timeout) Duration() time.Duration {
	return t.d
}

// AsMillis returns the spanned duration as a whole millisecond count.
func (t Timeout) AsMillis() int64 {
	return t.d.Milliseconds()
}

func (t Timeout) String() string {
	return fmt.Sprintf("Timeout(%s)", t.d)
}
