// Package tcelldriver connects a tui.App to a terminal through tcell.
// A Driver is both the App's output Driver and its EventReader.
package tcelldriver

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/termkit"
)

// Driver adapts a tcell.Screen.
type Driver struct {
	screen    tcell.Screen
	events    chan tcell.Event
	interrupt chan struct{}
	quit      chan struct{}
	closeOnce sync.Once
	mouse     mouseState
}

var (
	_ tui.Driver              = (*Driver)(nil)
	_ tui.InterruptibleReader = (*Driver)(nil)
	_ tui.MouseDriver         = (*Driver)(nil)
)

// New opens the controlling terminal.
func New() (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises screen and starts reading its events. Tests
// pass a tcell.SimulationScreen.
func NewWithScreen(screen tcell.Screen) (*Driver, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	d := &Driver{
		screen:    screen,
		events:    make(chan tcell.Event, 64),
		interrupt: make(chan struct{}, 1),
		quit:      make(chan struct{}),
	}
	go d.pump()
	return d, nil
}

// Screen returns the underlying tcell screen.
func (d *Driver) Screen() tcell.Screen {
	return d.screen
}

func (d *Driver) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

// Size returns the terminal size.
func (d *Driver) Size() tui.Size {
	w, h := d.screen.Size()
	return tui.Size{Width: w, Height: h}
}

// SetMouse turns mouse reporting on or off.
func (d *Driver) SetMouse(enabled bool) {
	if enabled {
		d.screen.EnableMouse()
	} else {
		d.screen.DisableMouse()
	}
}

// Flush writes the dirty rows of screen and shows them.
func (d *Driver) Flush(screen *tui.ScreenBuffer) error {
	rows := screen.DirtyRows()
	if len(rows) == 0 {
		return nil
	}
	for _, y := range rows {
		for x, c := range screen.Row(y) {
			if c.IsContinuation() {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			d.screen.SetContent(x, y, r, nil, Style(c.Style))
		}
		screen.ClearRowDirty(y)
	}
	d.screen.Show()
	return nil
}

// PollEvent returns the next converted event, waiting up to timeout.
// A negative timeout waits until an event arrives or Interrupt is called.
func (d *Driver) PollEvent(timeout time.Duration) (tui.Event, bool) {
	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}
	for {
		if timeout == 0 {
			select {
			case ev, ok := <-d.events:
				if !ok {
					return nil, false
				}
				if out, ok := d.convert(ev); ok {
					return out, true
				}
				continue
			default:
				return nil, false
			}
		}
		select {
		case ev, ok := <-d.events:
			if !ok {
				return nil, false
			}
			if out, ok := d.convert(ev); ok {
				return out, true
			}
		case <-d.interrupt:
			return nil, false
		case <-expired:
			return nil, false
		}
	}
}

// Interrupt wakes a blocked PollEvent.
func (d *Driver) Interrupt() error {
	select {
	case d.interrupt <- struct{}{}:
	default:
	}
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		close(d.quit)
		d.screen.Fini()
	})
	return nil
}

func (d *Driver) convert(ev tcell.Event) (tui.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e), true
	case *tcell.EventMouse:
		return d.mouse.convert(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return tui.ResizeEvent{Width: w, Height: h}, true
	}
	return nil, false
}
