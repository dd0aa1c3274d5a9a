package tui

import (
	"sync"
	"time"
)

// MockReader is an EventReader that replays queued events.
type MockReader struct {
	mu     sync.Mutex
	events []Event
	wake   chan struct{}
	closed bool
}

var _ InterruptibleReader = (*MockReader)(nil)

// NewMockReader creates a reader that returns events in order.
func NewMockReader(events ...Event) *MockReader {
	return &MockReader{events: events, wake: make(chan struct{}, 1)}
}

// Push queues more events.
func (r *MockReader) Push(events ...Event) {
	r.mu.Lock()
	r.events = append(r.events, events...)
	r.mu.Unlock()
	r.Interrupt()
}

// PollEvent returns the next queued event, waiting up to timeout for one.
func (r *MockReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := r.next(); ok {
		return ev, true
	}
	if timeout == 0 {
		return nil, false
	}
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}
	select {
	case <-r.wake:
		return r.next()
	case <-timer:
		return nil, false
	}
}

func (r *MockReader) next() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || len(r.events) == 0 {
		return nil, false
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, true
}

// Interrupt wakes a blocked PollEvent.
func (r *MockReader) Interrupt() error {
	select {
	case r.wake <- struct{}{}:
	default:
	}
	return nil
}

// Close stops the reader from returning further events.
func (r *MockReader) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return r.Interrupt()
}
