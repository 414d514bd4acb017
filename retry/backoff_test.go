package retry

import (
	"testing"
	"time"
)

func TestFixedBackoff(t *testing.T) {
	s := FixedBackoff(100 * time.Millisecond)
	for attempt := 0; attempt < 4; attempt++ {
		if d := s.NextBackoff(attempt); d != 100*time.Millisecond {
			t.Errorf("attempt %d: expected 100ms, got %s", attempt, d)
		}
	}
}

func TestLinearBackoff(t *testing.T) {
	s := LinearBackoff(100 * time.Millisecond)
	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
	}
	for attempt, want := range expected {
		if d := s.NextBackoff(attempt); d != want {
			t.Errorf("attempt %d: expected %s, got %s", attempt, want, d)
		}
	}
}

func TestExponentialBackoff(t *testing.T) {
	s := ExponentialBackoff(100*time.Millisecond, 500*time.Millisecond)
	expected := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		500 * time.Millisecond, // capped
		500 * time.Millisecond,
	}
	for attempt, want := range expected {
		if d := s.NextBackoff(attempt); d != want {
			t.Errorf("attempt %d: expected %s, got %s", attempt, want, d)
		}
	}
}
