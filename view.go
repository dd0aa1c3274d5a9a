package tui

import "fmt"

// LayoutStyle selects how a view's frame is determined.
type LayoutStyle uint8

const (
	// LayoutAbsolute keeps the frame set by SetFrame.
	LayoutAbsolute LayoutStyle = iota
	// LayoutComputed resolves the frame from the X, Y, Width and Height
	// constraints during the superview's layout pass.
	LayoutComputed
)

func (s LayoutStyle) String() string {
	if s == LayoutComputed {
		return "Computed"
	}
	return "Absolute"
}

// View is a node of the view tree. It owns a Layer, an optional set of
// event hooks, and handles to its superview, subviews, and focused subview.
type View struct {
	arena    *Arena
	id       ViewID
	name     string
	released bool

	parent   ViewID
	children []ViewID // back to front

	frame       Rect
	x, y        Pos
	width       Dim
	height      Dim
	layoutStyle LayoutStyle
	needsLayout bool

	dirty Rect // view-local
	layer *Layer

	canFocus bool
	tabStop  bool
	hasFocus bool
	focused  ViewID

	scheme                    *ColorScheme
	transparent               bool
	wantsMousePositionReports bool
	wantsContinuousPress      bool

	// toplevel is set when the view is the root of a Toplevel.
	toplevel *Toplevel

	onDraw           func(*View, *Painter)
	onKey            func(*View, KeyEvent) bool
	onHotKey         func(*View, KeyEvent) bool
	onColdKey        func(*View, KeyEvent) bool
	onMouse          func(*View, MouseEvent) bool
	onMouseEnter     func(*View, MouseEvent)
	onMouseLeave     func(*View, MouseEvent)
	onFocus          func(*View)
	onBlur           func(*View)
	onLayoutComplete func(*View)
}

// ID returns the view's handle.
func (v *View) ID() ViewID {
	return v.id
}

// Name returns the diagnostic name set with WithName.
func (v *View) Name() string {
	return v.name
}

// Arena returns the arena that owns v.
func (v *View) Arena() *Arena {
	return v.arena
}

func (v *View) String() string {
	if v == nil {
		return "<nil view>"
	}
	if v.name != "" {
		return v.name
	}
	return v.id.String()
}

// Layer returns the layer v paints into.
func (v *View) Layer() *Layer {
	return v.layer
}

func (v *View) lookup(id ViewID) *View {
	return v.arena.Lookup(id)
}

func (v *View) mustBeLive(method string) {
	if v.released {
		panic(fmt.Sprintf("tui: %s called on released view %s", method, v.id))
	}
}

// CanFocus reports whether v can receive focus.
func (v *View) CanFocus() bool { return v.canFocus }

// SetCanFocus changes focusability. Clearing it on a focused view moves
// focus to the next focusable sibling.
func (v *View) SetCanFocus(can bool) {
	if v.canFocus == can {
		return
	}
	v.canFocus = can
	if can {
		if p := v.Superview(); p != nil {
			p.canFocus = true
		}
		return
	}
	if p := v.Superview(); p != nil && p.focused == v.id {
		p.dropFocusedChild()
	}
}

// TabStop reports whether Tab traversal stops at v.
func (v *View) TabStop() bool { return v.tabStop }

// SetTabStop sets whether Tab traversal stops at v.
func (v *View) SetTabStop(stop bool) { v.tabStop = stop }

// Transparent reports whether TransparentCell regions show the container.
func (v *View) Transparent() bool { return v.transparent }

// WantsMousePositionReports reports whether v receives pure motion events.
func (v *View) WantsMousePositionReports() bool { return v.wantsMousePositionReports }

// WantsContinuousPress reports whether a held button is re-delivered to v.
func (v *View) WantsContinuousPress() bool { return v.wantsContinuousPress }

// ColorScheme returns v's scheme, falling back to the nearest ancestor,
// then the App, then DefaultColorScheme.
func (v *View) ColorScheme() ColorScheme {
	for cur := v; cur != nil; cur = cur.Superview() {
		if cur.scheme != nil {
			return *cur.scheme
		}
	}
	if v.arena.app != nil && v.arena.app.scheme != nil {
		return *v.arena.app.scheme
	}
	return DefaultColorScheme
}

// SetColorScheme overrides the scheme for v and its subtree; nil clears it.
func (v *View) SetColorScheme(cs *ColorScheme) {
	v.scheme = cs
	v.SetNeedsDisplay()
}

// SetOnDraw sets the paint hook called by display.
func (v *View) SetOnDraw(fn func(*View, *Painter)) { v.onDraw = fn }

// SetOnKey sets the normal-phase key handler.
func (v *View) SetOnKey(fn func(*View, KeyEvent) bool) { v.onKey = fn }

// SetOnHotKey sets the hot-phase key handler.
func (v *View) SetOnHotKey(fn func(*View, KeyEvent) bool) { v.onHotKey = fn }

// SetOnColdKey sets the cold-phase key handler.
func (v *View) SetOnColdKey(fn func(*View, KeyEvent) bool) { v.onColdKey = fn }

// SetOnMouse sets the mouse handler. Returning false bubbles the event.
func (v *View) SetOnMouse(fn func(*View, MouseEvent) bool) { v.onMouse = fn }

// SetOnMouseEnter sets the hook called when the pointer enters v.
func (v *View) SetOnMouseEnter(fn func(*View, MouseEvent)) { v.onMouseEnter = fn }

// SetOnMouseLeave sets the hook called when the pointer leaves v.
func (v *View) SetOnMouseLeave(fn func(*View, MouseEvent)) { v.onMouseLeave = fn }

// SetOnFocus sets the hook called when v gains focus.
func (v *View) SetOnFocus(fn func(*View)) { v.onFocus = fn }

// SetOnBlur sets the hook called when v loses focus.
func (v *View) SetOnBlur(fn func(*View)) { v.onBlur = fn }

// SetOnLayoutComplete sets the hook called after v lays out its subviews.
func (v *View) SetOnLayoutComplete(fn func(*View)) { v.onLayoutComplete = fn }
