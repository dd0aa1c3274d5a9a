package tui

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithInputLatency sets the polling timeout for the event reader.
// Default is 50ms. Use InputLatencyBlocking (-1) for blocking mode.
// A value of 0 is not allowed and will return an error.
func WithInputLatency(d time.Duration) AppOption {
	return func(a *App) error {
		if d == 0 {
			return fmt.Errorf("input latency of 0 (busy polling) is not allowed; use a positive duration or InputLatencyBlocking")
		}
		a.inputLatency = d
		return nil
	}
}

// WithFrameRate sets the target frame rate for the run loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}

// WithGlobalKeyHandler sets a handler that sees every key event first.
// If it returns true, the event is consumed.
func WithGlobalKeyHandler(fn func(KeyEvent) bool) AppOption {
	return func(a *App) error {
		a.globalKeyHandler = fn
		return nil
	}
}

// WithoutMouse disables mouse reporting on drivers that support it.
func WithoutMouse() AppOption {
	return func(a *App) error {
		a.mouseEnabled = false
		return nil
	}
}

// WithBlankCell sets the cell new layers and the screen are cleared to.
func WithBlankCell(c Cell) AppOption {
	return func(a *App) error {
		if c.Width == 0 {
			return fmt.Errorf("blank cell cannot be a wide-rune continuation")
		}
		if RuneWidth(c.Rune) != 1 {
			return fmt.Errorf("blank cell rune %q must be one cell wide", c.Rune)
		}
		a.blank = c
		return nil
	}
}

// WithDefaultColorScheme sets the scheme for views that do not set their own.
func WithDefaultColorScheme(cs ColorScheme) AppOption {
	return func(a *App) error {
		a.scheme = &cs
		return nil
	}
}

// WithLayoutErrorHandler receives every error from a layout pass run by
// the App, including *RecursiveLayoutError.
func WithLayoutErrorHandler(fn func(*View, error)) AppOption {
	return func(a *App) error {
		a.layoutErrorHandler = fn
		return nil
	}
}

// WithContinuousPressInterval sets how often a held press is re-delivered.
func WithContinuousPressInterval(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("continuous press interval must be positive")
		}
		a.continuousPressInterval = d
		return nil
	}
}
