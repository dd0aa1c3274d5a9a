package tui

import "github.com/grindlemire/termkit/internal/debug"

// HasFocus reports whether v is on the focused chain of the active toplevel.
func (v *View) HasFocus() bool {
	return v.hasFocus
}

// Focused returns the subview that holds, or last held, focus within v.
func (v *View) Focused() *View {
	c := v.lookup(v.focused)
	if c == nil || c.parent != v.id {
		return nil
	}
	return c
}

// MostFocused returns the deepest view reachable through focused subviews.
func (v *View) MostFocused() *View {
	var deepest *View
	for c := v.Focused(); c != nil; c = c.Focused() {
		deepest = c
	}
	return deepest
}

// focusChain returns the views reachable from v through focused pointers,
// top to bottom, excluding v.
func (v *View) focusChain() []*View {
	var chain []*View
	for c := v.Focused(); c != nil; c = c.Focused() {
		chain = append(chain, c)
	}
	return chain
}

// focusActive reports whether focus changes in v's tree are visible, i.e.
// the tree is detached from any App stack or belongs to the current toplevel.
func (v *View) focusActive() bool {
	root := v.Root()
	if root.toplevel == nil || v.arena.app == nil {
		return true
	}
	return v.arena.app.Current() == root.toplevel
}

// SetFocus moves focus within v to target, a focusable descendant of v.
// It returns false without side effects if target is nil, not focusable,
// not inside v, or separated from v by a view that cannot take focus.
func (v *View) SetFocus(target *View) bool {
	v.mustBeLive("SetFocus")

	path, ok := v.pathTo(target)
	if !ok {
		debug.Log("View.SetFocus: %s rejected target %s", v, target)
		return false
	}

	root := v
	for p := v.Superview(); p != nil; p = p.Superview() {
		path = append([]*View{root}, path...)
		root = p
	}

	active := v.focusActive()
	root.linkFocus(path, active)
	target.ensureFocus(active)
	if active {
		root.markFocused()
	}
	debug.Log("View.SetFocus: %s -> %s", v, target)
	return true
}

// pathTo returns the views from v's direct subview down to target.
func (v *View) pathTo(target *View) ([]*View, bool) {
	if target == nil || target.released || !target.canFocus {
		return nil, false
	}
	var path []*View
	for cur := target; cur != v; cur = cur.Superview() {
		if cur == nil || !cur.canFocus {
			return nil, false
		}
		path = append(path, cur)
	}
	if len(path) == 0 {
		return nil, false
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// linkFocus resigns the part of v's old focus chain that diverges from
// path, deepest first, then links path below v and marks it focused
// top-down. The chain below path's last view is left to ensureFocus.
func (v *View) linkFocus(path []*View, active bool) {
	old := v.focusChain()
	common := 0
	for common < len(old) && common < len(path) && old[common] == path[common] {
		common++
	}
	if common < len(path) {
		for i := len(old) - 1; i >= common; i-- {
			old[i].markBlurred()
		}
	}

	parent := v
	for _, p := range path {
		parent.focused = p.id
		parent = p
	}
	if !active {
		return
	}
	for _, p := range path {
		p.markFocused()
	}
}

// ensureFocus descends from v through the remembered, or else the first
// focusable, subview at each level.
func (v *View) ensureFocus(active bool) {
	for cur := v; ; {
		next := cur.Focused()
		if next == nil || !next.canFocus {
			next = cur.firstFocusable(false)
		}
		if next == nil {
			return
		}
		cur.focused = next.id
		if active {
			next.markFocused()
		}
		cur = next
	}
}

func (v *View) firstFocusable(tabStopsOnly bool) *View {
	for _, c := range v.Subviews() {
		if c.canFocus && (!tabStopsOnly || c.tabStop) {
			return c
		}
	}
	return nil
}

func (v *View) lastFocusable() *View {
	subs := v.Subviews()
	for i := len(subs) - 1; i >= 0; i-- {
		if subs[i].canFocus && subs[i].tabStop {
			return subs[i]
		}
	}
	return nil
}

func (v *View) markFocused() {
	if v.hasFocus {
		return
	}
	v.hasFocus = true
	v.SetNeedsDisplay()
	if v.onFocus != nil {
		v.onFocus(v)
	}
}

func (v *View) markBlurred() {
	if !v.hasFocus {
		return
	}
	v.hasFocus = false
	v.SetNeedsDisplay()
	if v.onBlur != nil {
		v.onBlur(v)
	}
}

// resignChain clears focus on v and its focus chain, deepest first.
// The focused pointers are kept so focus can be restored later.
func (v *View) resignChain() {
	chain := v.focusChain()
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].markBlurred()
	}
	v.markBlurred()
}

// restoreChain marks v and its remembered focus chain focused, top-down.
func (v *View) restoreChain() {
	v.markFocused()
	v.ensureFocus(true)
}

// dropFocusedChild resigns the focused subview after it stopped accepting
// focus and moves focus to the next candidate.
func (v *View) dropFocusedChild() {
	c := v.Focused()
	if c == nil {
		return
	}
	wasFocused := c.hasFocus
	c.resignChain()
	v.focused = NoView
	if wasFocused && !v.FocusFirst() {
		v.ensureFocus(true)
	}
}

// FocusFirst focuses the first focusable tab stop among v's subviews,
// descending into its first focusable descendant.
func (v *View) FocusFirst() bool {
	c := v.firstFocusable(true)
	if c == nil {
		return false
	}
	if !c.FocusFirst() {
		v.SetFocus(c)
	}
	return true
}

// FocusLast focuses the last focusable tab stop among v's subviews,
// descending into its last focusable descendant.
func (v *View) FocusLast() bool {
	c := v.lastFocusable()
	if c == nil {
		return false
	}
	if !c.FocusLast() {
		v.SetFocus(c)
	}
	return true
}

// FocusNext moves focus forward. The focused subview gets the first chance
// to move focus among its own subviews. It returns false when the end of
// the list is reached.
func (v *View) FocusNext() bool {
	return v.focusStep(v.Subviews(), true)
}

// FocusPrev moves focus backward; see FocusNext.
func (v *View) FocusPrev() bool {
	subs := v.Subviews()
	for i, j := 0, len(subs)-1; i < j; i, j = i+1, j-1 {
		subs[i], subs[j] = subs[j], subs[i]
	}
	return v.focusStep(subs, false)
}

func (v *View) focusStep(order []*View, forward bool) bool {
	cur := v.Focused()
	if cur == nil {
		if forward {
			return v.FocusFirst()
		}
		return v.FocusLast()
	}

	passed := false
	for _, c := range order {
		if c == cur {
			if forward && c.FocusNext() || !forward && c.FocusPrev() {
				return true
			}
			passed = true
			continue
		}
		if !passed || !c.canFocus || !c.tabStop {
			continue
		}
		if forward {
			c.FocusFirst()
		} else {
			c.FocusLast()
		}
		v.SetFocus(c)
		return true
	}
	return false
}
