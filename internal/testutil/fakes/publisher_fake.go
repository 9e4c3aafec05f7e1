package fakes

import (
	"context"
	"sync"

	"github.com/dhima/employee-directory/platform/events"
)

// FakePublisher records published events.
type FakePublisher struct {
	mu     sync.Mutex
	Events []events.EmployeeEvent
	Err    error
	closed bool
}

func (f *FakePublisher) Publish(_ context.Context, event events.EmployeeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Events = append(f.Events, event)
	return nil
}

func (f *FakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// Closed reports whether Close was called.
func (f *FakePublisher) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Published returns a copy of the recorded events.
func (f *FakePublisher) Published() []events.EmployeeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]events.EmployeeEvent, len(f.Events))
	copy(out, f.Events)
	return out
}
