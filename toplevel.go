package tui

import "github.com/grindlemire/termkit/internal/debug"

// Toplevel is the root view of one entry in the App's toplevel stack.
type Toplevel struct {
	*View

	// Modal stops key and mouse input from reaching toplevels below.
	Modal bool

	app        *App
	running    bool
	fullScreen bool
	onReady    func(*Toplevel)
	onStop     func(*Toplevel)
}

// NewToplevel creates a toplevel. Without a frame option it covers the
// screen and follows resizes.
func (a *App) NewToplevel(opts ...Option) *Toplevel {
	a.mustBeInitialized("NewToplevel")
	v := a.arena.NewView(opts...)
	t := &Toplevel{View: v, app: a}
	v.toplevel = t
	if v.frame.IsEmpty() && v.layoutStyle == LayoutAbsolute {
		t.fullScreen = true
		v.SetFrame(a.compositor.Screen().Bounds())
	}
	return t
}

// Running reports whether t is on the stack.
func (t *Toplevel) Running() bool {
	return t.running
}

// SetOnReady sets the hook called when t is presented.
func (t *Toplevel) SetOnReady(fn func(*Toplevel)) { t.onReady = fn }

// SetOnStop sets the hook called when t leaves the stack.
func (t *Toplevel) SetOnStop(fn func(*Toplevel)) { t.onStop = fn }

// processHotKey walks the whole tree, each view before its subviews.
func (t *Toplevel) processHotKey(ke KeyEvent) bool {
	return t.View.walk(func(v *View) bool {
		return v.onHotKey != nil && v.onHotKey(v, ke)
	})
}

// processColdKey walks the whole tree, each view before its subviews.
func (t *Toplevel) processColdKey(ke KeyEvent) bool {
	return t.View.walk(func(v *View) bool {
		return v.onColdKey != nil && v.onColdKey(v, ke)
	})
}

// processKey offers ke to the focused chain, deepest view first. When
// navigate is set, unconsumed Tab, Backtab and arrow keys move focus.
func (t *Toplevel) processKey(ke KeyEvent, navigate bool) bool {
	chain := append([]*View{t.View}, t.View.focusChain()...)
	for i := len(chain) - 1; i >= 0; i-- {
		v := chain[i]
		if v.onKey != nil && v.onKey(v, ke) {
			return true
		}
	}
	if !navigate {
		return false
	}

	switch ke.Key {
	case KeyTab, KeyRight, KeyDown:
		if ke.Key == KeyTab && ke.Mod.Has(ModShift) {
			return t.focusPrevWrapping()
		}
		return t.focusNextWrapping()
	case KeyBacktab, KeyLeft, KeyUp:
		return t.focusPrevWrapping()
	}
	return false
}

func (t *Toplevel) focusNextWrapping() bool {
	old := t.MostFocused()
	if !t.FocusNext() && !t.FocusFirst() {
		return false
	}
	debug.Log("Toplevel.focusNext: %s -> %s", old, t.MostFocused())
	return true
}

func (t *Toplevel) focusPrevWrapping() bool {
	old := t.MostFocused()
	if !t.FocusPrev() && !t.FocusLast() {
		return false
	}
	debug.Log("Toplevel.focusPrev: %s -> %s", old, t.MostFocused())
	return true
}
