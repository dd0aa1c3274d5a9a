package tui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/termkit/internal/debug"
)

// InputLatencyBlocking makes the event reader block until input arrives.
// The reader must implement InterruptibleReader so Stop can wake it.
const InputLatencyBlocking = -1 * time.Millisecond

const (
	defaultFrameDuration           = 16 * time.Millisecond
	defaultInputLatency            = 50 * time.Millisecond
	defaultEventQueueSize          = 256
	defaultContinuousPressInterval = 100 * time.Millisecond
)

// MouseDriver is implemented by drivers that can switch mouse reporting.
type MouseDriver interface {
	SetMouse(enabled bool)
}

// App is the single context that owns the view arena, the toplevel stack,
// the compositor, and all input routing state. Create it with NewApp; the
// zero value panics on use.
type App struct {
	initialized bool

	driver     Driver
	reader     EventReader
	arena      *Arena
	compositor *Compositor

	toplevels    []*Toplevel // bottom to top
	pendingStops []*Toplevel

	hotkeys          hotKeyTable
	globalKeyHandler func(KeyEvent) bool
	grab             ViewID
	mouseOwner       ViewID
	press            pressSlot

	scheme             *ColorScheme
	blank              Cell
	layoutErrorHandler func(*View, error)

	// Configuration (set via options)
	frameDuration           time.Duration
	inputLatency            time.Duration
	eventQueueSize          int
	continuousPressInterval time.Duration
	mouseEnabled            bool

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	stopped    atomic.Bool
}

// NewApp creates an App that draws through driver and reads from reader.
// reader may be nil when events are injected with ProcessKeyEvent and
// ProcessMouseEvent.
func NewApp(driver Driver, reader EventReader, opts ...AppOption) (*App, error) {
	if driver == nil {
		return nil, errors.New("tui: NewApp requires a driver")
	}

	app := &App{
		driver:                  driver,
		reader:                  reader,
		blank:                   BlankCell,
		frameDuration:           defaultFrameDuration,
		inputLatency:            defaultInputLatency,
		eventQueueSize:          defaultEventQueueSize,
		continuousPressInterval: defaultContinuousPressInterval,
		mouseEnabled:            true,
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	if app.inputLatency < 0 && reader != nil {
		if _, ok := reader.(InterruptibleReader); !ok {
			return nil, errors.New("tui: blocking input latency requires an InterruptibleReader")
		}
	}

	app.arena = NewArena()
	app.arena.app = app
	app.arena.blank = app.blank
	app.compositor = NewCompositor(driver.Size(), app.blank)
	app.eventQueue = make(chan func(), app.eventQueueSize)
	app.stopCh = make(chan struct{})

	if md, ok := driver.(MouseDriver); ok {
		md.SetMouse(app.mouseEnabled)
	}
	app.initialized = true
	debug.Log("NewApp: screen=%v frame=%v latency=%v", driver.Size(), app.frameDuration, app.inputLatency)
	return app, nil
}

func (a *App) mustBeInitialized(method string) {
	if a == nil || !a.initialized {
		panic(fmt.Sprintf("tui: %s called before NewApp", method))
	}
}

// Arena returns the arena holding every view of the App.
func (a *App) Arena() *Arena {
	a.mustBeInitialized("Arena")
	return a.arena
}

// NewView creates a view in the App's arena.
func (a *App) NewView(opts ...Option) *View {
	a.mustBeInitialized("NewView")
	return a.arena.NewView(opts...)
}

// Screen returns the composited screen.
func (a *App) Screen() *ScreenBuffer {
	a.mustBeInitialized("Screen")
	return a.compositor.Screen()
}

// Compositor returns the App's compositor.
func (a *App) Compositor() *Compositor {
	a.mustBeInitialized("Compositor")
	return a.compositor
}

// Settle brings the screen up to date: it lays out toplevels that need
// it, displays dirty views, composites, and flushes dirty rows to the
// driver. Layout errors go to the layout error handler.
func (a *App) Settle() error {
	a.mustBeInitialized("Settle")
	for _, t := range a.toplevels {
		a.place(t)
		if t.needsLayout {
			if err := t.LayoutSubviews(); err != nil {
				a.reportLayoutError(t.View, err)
			}
		}
	}
	// Occluded toplevels keep their dirty regions until they show again.
	for _, t := range a.toplevels[a.compositor.VisibleFrom(a.toplevels):] {
		t.display()
	}
	a.compositor.Composite(a.toplevels)
	screen := a.compositor.Screen()
	if len(screen.DirtyRows()) == 0 {
		return nil
	}
	if err := a.driver.Flush(screen); err != nil {
		return fmt.Errorf("flush screen: %w", err)
	}
	return nil
}

// Refresh forces the next Settle to redraw the whole screen.
func (a *App) Refresh() {
	a.mustBeInitialized("Refresh")
	for _, t := range a.toplevels {
		t.SetNeedsDisplay()
	}
	a.compositor.Invalidate()
}

// place resolves a computed toplevel's constraints against the screen.
func (a *App) place(t *Toplevel) {
	if t.layoutStyle != LayoutComputed {
		return
	}
	bounds := a.compositor.Screen().Bounds()
	t.setFrame(t.resolveFrame(bounds, a.arena))
}

func (a *App) reportLayoutError(v *View, err error) {
	debug.Log("layout error in %s: %v", v, err)
	if a.layoutErrorHandler != nil {
		a.layoutErrorHandler(v, err)
	}
}

// dispatch routes a single input event.
func (a *App) dispatch(ev Event) bool {
	switch e := ev.(type) {
	case KeyEvent:
		return a.ProcessKeyEvent(e)
	case MouseEvent:
		return a.ProcessMouseEvent(e)
	case ResizeEvent:
		a.resize(Size{Width: e.Width, Height: e.Height})
		return true
	}
	return false
}

// resize follows a terminal size change: full-screen toplevels take the
// new size and the whole screen is redrawn.
func (a *App) resize(size Size) {
	a.compositor.Resize(size)
	bounds := a.compositor.Screen().Bounds()
	for _, t := range a.toplevels {
		if t.fullScreen {
			t.SetFrame(bounds)
		}
		a.place(t)
	}
	a.Refresh()
	debug.Log("App.resize: %dx%d", size.Width, size.Height)
}

// Close releases the reader and the driver.
func (a *App) Close() error {
	a.mustBeInitialized("Close")
	a.Stop()
	var errs []error
	if a.reader != nil {
		errs = append(errs, a.reader.Close())
	}
	errs = append(errs, a.driver.Close())
	return errors.Join(errs...)
}
