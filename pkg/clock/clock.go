package clock

import (
	"sync"
	"time"
)

// Clock supplies timestamps for employee events.
type Clock interface {
	Now() time.Time
}

// RealClock reports wall-clock time in UTC, truncated to milliseconds so
// that event timestamps survive a JSON round trip unchanged.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// FixedClock always returns the same instant.
type FixedClock struct{ t time.Time }

func NewFixed(t time.Time) FixedClock { return FixedClock{t: t} }

func (f FixedClock) Now() time.Time { return f.t }

// SteppingClock advances by a fixed step on every call, starting at start.
type SteppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func NewStepping(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

func (s *SteppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.next
	s.next = s.next.Add(s.step)
	return now
}
