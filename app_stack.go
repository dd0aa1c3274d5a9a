package tui

import (
	"slices"

	"github.com/grindlemire/termkit/internal/debug"
)

// Current returns the top of the toplevel stack, or nil.
func (a *App) Current() *Toplevel {
	a.mustBeInitialized("Current")
	if len(a.toplevels) == 0 {
		return nil
	}
	return a.toplevels[len(a.toplevels)-1]
}

// Toplevels returns the stack bottom to top.
func (a *App) Toplevels() []*Toplevel {
	a.mustBeInitialized("Toplevels")
	return slices.Clone(a.toplevels)
}

func (a *App) topDown() []*Toplevel {
	out := slices.Clone(a.toplevels)
	slices.Reverse(out)
	return out
}

// Present pushes t onto the stack and gives it focus.
func (a *App) Present(t *Toplevel) {
	a.mustBeInitialized("Present")
	if t == nil || t.running {
		return
	}
	if t.app != a {
		panic("tui: Present called with a toplevel from another App")
	}
	if prev := a.Current(); prev != nil {
		prev.resignChain()
	}

	a.toplevels = append(a.toplevels, t)
	t.running = true
	if t.fullScreen {
		t.SetFrame(a.compositor.Screen().Bounds())
	}
	a.place(t)
	if err := t.LayoutSubviews(); err != nil {
		a.reportLayoutError(t.View, err)
	}
	a.activate(t)
	a.compositor.Invalidate()
	debug.Log("App.Present: %s (depth %d)", t, len(a.toplevels))

	if t.onReady != nil {
		t.onReady(t)
	}
}

// activate focuses t's remembered chain, or its first focusable view.
func (a *App) activate(t *Toplevel) {
	if t.Focused() != nil {
		t.restoreChain()
	} else if !t.FocusFirst() {
		t.markFocused()
	}
	t.SetNeedsDisplay()
}

// RequestStop removes t from the stack after the current batch of events.
// A nil t stops the current toplevel. Removing the last toplevel stops
// the App.
func (a *App) RequestStop(t *Toplevel) {
	a.mustBeInitialized("RequestStop")
	if t == nil {
		t = a.Current()
	}
	if t == nil || slices.Contains(a.pendingStops, t) {
		return
	}
	a.pendingStops = append(a.pendingStops, t)
}

// applyStops pops every toplevel queued by RequestStop.
func (a *App) applyStops() {
	if len(a.pendingStops) == 0 {
		return
	}
	stops := a.pendingStops
	a.pendingStops = nil

	for _, t := range stops {
		idx := slices.Index(a.toplevels, t)
		if idx < 0 {
			continue
		}
		wasCurrent := idx == len(a.toplevels)-1
		a.toplevels = slices.Delete(a.toplevels, idx, idx+1)
		t.running = false
		t.resignChain()
		a.forgetSubtree(t.View)
		debug.Log("App.RequestStop: %s (depth %d)", t, len(a.toplevels))
		if t.onStop != nil {
			t.onStop(t)
		}
		if wasCurrent {
			if next := a.Current(); next != nil {
				a.activate(next)
			}
		}
	}
	a.compositor.Invalidate()

	if len(a.toplevels) == 0 {
		a.Stop()
	}
}
