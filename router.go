package tui

import (
	"time"

	"github.com/grindlemire/termkit/internal/debug"
)

// pressSlot remembers the last press delivered to a view that wants
// continuous press reports.
type pressSlot struct {
	view  ViewID
	event MouseEvent
	last  time.Time
}

// ProcessKeyEvent routes ke through the global key handler, then three
// phases across the toplevel stack from the top down: hot keys (global
// registry first, then each toplevel's whole tree), the focused chain, and
// cold keys. Each phase ends at the first handler that consumes the event
// and never passes a modal toplevel.
func (a *App) ProcessKeyEvent(ke KeyEvent) bool {
	a.mustBeInitialized("ProcessKeyEvent")

	if a.globalKeyHandler != nil && a.globalKeyHandler(ke) {
		return true
	}
	if a.hotkeys.dispatch(ke) {
		return true
	}

	stack := a.topDown()
	for _, t := range stack {
		if t.processHotKey(ke) {
			return true
		}
		if t.Modal {
			break
		}
	}
	current := a.Current()
	for _, t := range stack {
		if t.processKey(ke, t == current) {
			return true
		}
		if t.Modal {
			break
		}
	}
	for _, t := range stack {
		if t.processColdKey(ke) {
			return true
		}
		if t.Modal {
			break
		}
	}
	debug.Log("App.ProcessKeyEvent: %s unhandled", ke)
	return false
}

// RegisterHotKey adds a global hot key checked before any toplevel.
func (a *App) RegisterHotKey(b KeyBinding) (HotKeyID, error) {
	a.mustBeInitialized("RegisterHotKey")
	return a.hotkeys.add(b)
}

// UnregisterHotKey removes a hot key added with RegisterHotKey.
func (a *App) UnregisterHotKey(id HotKeyID) bool {
	a.mustBeInitialized("UnregisterHotKey")
	return a.hotkeys.remove(id)
}

// GrabMouse sends every mouse event to v until UngrabMouse.
func (a *App) GrabMouse(v *View) {
	a.mustBeInitialized("GrabMouse")
	if v == nil {
		return
	}
	debug.Log("App.GrabMouse: %s", v)
	a.grab = v.id
}

// UngrabMouse releases the grab.
func (a *App) UngrabMouse() {
	a.mustBeInitialized("UngrabMouse")
	if !a.grab.IsZero() {
		debug.Log("App.UngrabMouse: %s", a.grab)
	}
	a.grab = NoView
}

// MouseGrabView returns the view holding the grab, or nil.
func (a *App) MouseGrabView() *View {
	a.mustBeInitialized("MouseGrabView")
	return a.arena.Lookup(a.grab)
}

// ProcessMouseEvent routes me, whose X and Y are screen coordinates.
//
// While a view holds the grab it receives every event in its own
// coordinates, with OutsideFrame set when the pointer is outside it.
// Otherwise the deepest view of the current toplevel under the pointer is
// found; a change of owner sends Leave to the old owner and then Enter to
// the new one. Pure motion only reaches views that want position reports.
// Unhandled events bubble to ancestors.
func (a *App) ProcessMouseEvent(me MouseEvent) bool {
	a.mustBeInitialized("ProcessMouseEvent")

	screen := Point{X: me.X, Y: me.Y}
	me.AbsX, me.AbsY = me.X, me.Y
	me.OutsideFrame = false

	if grab := a.arena.Lookup(a.grab); grab != nil {
		local := grab.FromScreen(screen)
		me.X, me.Y = local.X, local.Y
		me.OutsideFrame = !grab.Bounds().ContainsPoint(local)
		me.Target = grab.id
		return grab.onMouse != nil && grab.onMouse(grab, me)
	}

	var target *View
	if top := a.Current(); top != nil {
		target = hitTest(top.View, screen)
	}

	a.updateMouseOwner(target, me)
	a.updatePressSlot(target, me)
	if target == nil {
		return false
	}
	if me.IsMotionOnly() && !target.wantsMousePositionReports {
		return false
	}
	return bubbleMouse(target, me)
}

// updatePressSlot arms the continuous-press slot on a press over a view
// that wants it. Any hit elsewhere, including no view at all, clears it.
func (a *App) updatePressSlot(target *View, me MouseEvent) {
	switch {
	case target == nil || !target.wantsContinuousPress:
		a.press = pressSlot{}
	case me.Action == MousePress:
		a.press = pressSlot{view: target.id, event: me, last: time.Now()}
	case me.Action == MouseRelease:
		a.press = pressSlot{}
	}
}

// hitTest returns the deepest view containing p, given in v's superview
// coordinates, trying subviews front to back.
func hitTest(v *View, p Point) *View {
	if !v.frame.ContainsPoint(p) {
		return nil
	}
	local := p.Sub(v.frame.Origin())
	subs := v.Subviews()
	for i := len(subs) - 1; i >= 0; i-- {
		if hit := hitTest(subs[i], local); hit != nil {
			return hit
		}
	}
	return v
}

func bubbleMouse(v *View, me MouseEvent) bool {
	screen := Point{X: me.AbsX, Y: me.AbsY}
	for cur := v; cur != nil; cur = cur.Superview() {
		if cur.onMouse == nil {
			continue
		}
		local := cur.FromScreen(screen)
		me.X, me.Y = local.X, local.Y
		me.Target = cur.id
		if cur.onMouse(cur, me) {
			return true
		}
	}
	return false
}

func (a *App) updateMouseOwner(target *View, me MouseEvent) {
	var targetID ViewID
	if target != nil {
		targetID = target.id
	}
	if targetID == a.mouseOwner {
		return
	}
	screen := Point{X: me.AbsX, Y: me.AbsY}
	if old := a.arena.Lookup(a.mouseOwner); old != nil && old.onMouseLeave != nil {
		old.onMouseLeave(old, crossingEvent(old, screen, MouseLeave, me.Mod))
	}
	a.mouseOwner = targetID
	if target != nil && target.onMouseEnter != nil {
		target.onMouseEnter(target, crossingEvent(target, screen, MouseEnter, me.Mod))
	}
}

func crossingEvent(v *View, screen Point, action MouseAction, mod Modifier) MouseEvent {
	local := v.FromScreen(screen)
	return MouseEvent{
		X: local.X, Y: local.Y,
		AbsX: screen.X, AbsY: screen.Y,
		Action: action,
		Mod:    mod,
		Target: v.id,
	}
}

// tickContinuousPress re-delivers the held press when the interval has
// elapsed. It reports whether an event was delivered.
func (a *App) tickContinuousPress(now time.Time) bool {
	if a.press.view.IsZero() {
		return false
	}
	v := a.arena.Lookup(a.press.view)
	if v == nil {
		a.press = pressSlot{}
		return false
	}
	if now.Sub(a.press.last) < a.continuousPressInterval {
		return false
	}
	a.press.last = now
	bubbleMouse(v, a.press.event)
	return true
}

// forgetView drops every router reference to id.
func (a *App) forgetView(id ViewID) {
	if a.grab == id {
		a.grab = NoView
	}
	if a.mouseOwner == id {
		a.mouseOwner = NoView
	}
	if a.press.view == id {
		a.press = pressSlot{}
	}
}

func (a *App) forgetSubtree(v *View) {
	v.walk(func(c *View) bool {
		a.forgetView(c.id)
		return false
	})
}
