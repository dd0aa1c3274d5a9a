package tui

import (
	"slices"

	"github.com/grindlemire/termkit/internal/debug"
)

// AddSubview appends children in front of the existing subviews,
// detaching each from its previous superview first. A focusable child
// makes v focusable.
func (v *View) AddSubview(children ...*View) {
	v.mustBeLive("AddSubview")
	for _, child := range children {
		if child == nil {
			continue
		}
		if child == v || child.IsAncestorOf(v) {
			panic("tui: AddSubview would create a cycle in the view tree")
		}
		if child.arena != v.arena {
			panic("tui: AddSubview across arenas")
		}
		if p := child.Superview(); p != nil {
			p.RemoveSubview(child)
		}
		child.parent = v.id
		v.children = append(v.children, child.id)
		if child.canFocus {
			v.canFocus = true
		}
		child.needsLayout = true
		child.SetNeedsDisplay()
	}
	v.SetNeedsLayout()
	v.SetNeedsDisplay()
}

// RemoveSubview detaches child. Focus held inside child's subtree is
// resigned and v repaints the area child covered.
func (v *View) RemoveSubview(child *View) {
	if child == nil || child.parent != v.id {
		return
	}
	idx := slices.Index(v.children, child.id)
	if idx < 0 {
		return
	}

	if child.hasFocus {
		child.resignChain()
	}
	if v.focused == child.id {
		v.focused = NoView
	}
	if app := v.arena.app; app != nil {
		app.forgetSubtree(child)
	}

	v.children = slices.Delete(v.children, idx, idx+1)
	child.parent = NoView

	if v.hasFocus && v.focused.IsZero() {
		v.ensureFocus(true)
	}
	v.SetNeedsLayout()
	v.SetNeedsDisplayRect(child.frame)
	debug.Log("View.RemoveSubview: %s from %s", child, v)
}

// RemoveAll detaches every subview.
func (v *View) RemoveAll() {
	for len(v.children) > 0 {
		c := v.lookup(v.children[len(v.children)-1])
		if c == nil {
			v.children = v.children[:len(v.children)-1]
			continue
		}
		v.RemoveSubview(c)
	}
}

// Subviews returns the subviews back to front.
func (v *View) Subviews() []*View {
	out := make([]*View, 0, len(v.children))
	for _, id := range v.children {
		if c := v.lookup(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Superview returns the parent view, or nil for a root.
func (v *View) Superview() *View {
	return v.lookup(v.parent)
}

// BringSubviewToFront moves child to the end of the paint order.
func (v *View) BringSubviewToFront(child *View) {
	v.reorder(child, len(v.children)-1)
}

// SendSubviewToBack moves child to the start of the paint order.
func (v *View) SendSubviewToBack(child *View) {
	v.reorder(child, 0)
}

func (v *View) reorder(child *View, to int) {
	if child == nil || child.parent != v.id {
		return
	}
	idx := slices.Index(v.children, child.id)
	if idx < 0 || idx == to {
		return
	}
	v.children = slices.Delete(v.children, idx, idx+1)
	v.children = slices.Insert(v.children, to, child.id)
	v.SetNeedsDisplayRect(child.frame)
}

// IsAncestorOf reports whether other is a strict descendant of v.
func (v *View) IsAncestorOf(other *View) bool {
	if other == nil {
		return false
	}
	for p := other.Superview(); p != nil; p = p.Superview() {
		if p == v {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of v, which may be v itself.
func (v *View) Root() *View {
	cur := v
	for p := cur.Superview(); p != nil; p = p.Superview() {
		cur = p
	}
	return cur
}

// Toplevel returns the Toplevel whose tree contains v, or nil.
func (v *View) Toplevel() *Toplevel {
	return v.Root().toplevel
}

// ScreenOrigin returns v's top-left corner in screen coordinates.
func (v *View) ScreenOrigin() Point {
	var p Point
	for cur := v; cur != nil; cur = cur.Superview() {
		p = p.Add(cur.frame.Origin())
	}
	return p
}

// ToScreen converts a view-local point to screen coordinates.
func (v *View) ToScreen(local Point) Point {
	return local.Add(v.ScreenOrigin())
}

// FromScreen converts a screen point to view-local coordinates.
func (v *View) FromScreen(screen Point) Point {
	return screen.Sub(v.ScreenOrigin())
}

// walk visits v and its subtree depth-first, back to front, stopping when
// fn returns true.
func (v *View) walk(fn func(*View) bool) bool {
	if fn(v) {
		return true
	}
	for _, c := range v.Subviews() {
		if c.walk(fn) {
			return true
		}
	}
	return false
}
