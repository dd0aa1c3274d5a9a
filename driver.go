package tui

import "time"

// Driver is the output side of a terminal.
type Driver interface {
	// Size returns the current terminal size.
	Size() Size

	// Flush writes the dirty rows of screen to the terminal and clears
	// their dirty flags with ClearRowDirty.
	Flush(screen *ScreenBuffer) error

	// Close restores the terminal.
	Close() error
}

// EventReader reads events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	// A timeout of 0 performs a non-blocking check.
	// A negative timeout blocks until an event arrives or the reader is
	// interrupted.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources. Must be called when done.
	Close() error
}

// InterruptibleReader is an EventReader whose blocking PollEvent can be
// woken from another goroutine.
type InterruptibleReader interface {
	EventReader

	// Interrupt wakes up a blocking PollEvent call.
	// Safe to call even if not currently blocking.
	Interrupt() error
}
