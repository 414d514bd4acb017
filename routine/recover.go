package routine

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Recover recovers a pending panic and passes its value to each cleanup.
// It must be called directly from a deferred statement.
func Recover(cleanups ...func(r any)) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup(r)
		}
	}
}

// Recovered holds a recovered panic value and the program counters active at
// the recovery site.
type Recovered struct {
	Value   any
	Callers []uintptr
}

// NewRecovered captures the current call stack together with the panic
// value. skip counts additional stack frames to drop, 0 identifying the
// caller of NewRecovered.
func NewRecovered(skip int, value any) *Recovered {
	var callers [32]uintptr
	n := runtime.Callers(skip+2, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError returns the Recovered as an error, or nil for a nil receiver.
func (p *Recovered) AsError() error {
	if p == nil {
		return nil
	}
	return &RecoveredError{p}
}

// RecoveredError is an error wrapping a recovered panic. It exposes the
// panic site through StackTrace in the format used by github.com/pkg/errors.
type RecoveredError struct {
	*Recovered
}

func (e *RecoveredError) Error() string {
	return fmt.Sprintf("panic: %v\nstacktrace:%+v", e.Value, e.StackTrace())
}

func (e *RecoveredError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}
