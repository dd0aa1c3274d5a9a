package tui

// Option configures a View.
type Option func(*View)

// WithName sets the name used in diagnostics and errors.
func WithName(name string) Option {
	return func(v *View) {
		v.name = name
	}
}

// WithFrame sets an absolute frame.
func WithFrame(r Rect) Option {
	return func(v *View) {
		v.SetFrame(r)
	}
}

// WithX sets the X constraint and switches to computed layout.
func WithX(p Pos) Option {
	return func(v *View) {
		v.SetX(p)
	}
}

// WithY sets the Y constraint and switches to computed layout.
func WithY(p Pos) Option {
	return func(v *View) {
		v.SetY(p)
	}
}

// WithWidth sets the Width constraint and switches to computed layout.
func WithWidth(d Dim) Option {
	return func(v *View) {
		v.SetWidth(d)
	}
}

// WithHeight sets the Height constraint and switches to computed layout.
func WithHeight(d Dim) Option {
	return func(v *View) {
		v.SetHeight(d)
	}
}

// WithCanFocus sets whether the view accepts focus.
func WithCanFocus(can bool) Option {
	return func(v *View) {
		v.canFocus = can
	}
}

// WithTabStop sets whether Tab traversal stops at the view.
func WithTabStop(stop bool) Option {
	return func(v *View) {
		v.tabStop = stop
	}
}

// WithColorScheme overrides the inherited color scheme.
func WithColorScheme(cs ColorScheme) Option {
	return func(v *View) {
		v.scheme = &cs
	}
}

// WithTransparent makes cleared regions of the view show its container.
func WithTransparent() Option {
	return func(v *View) {
		v.transparent = true
		v.layer.blank = TransparentCell
		v.layer.Clear()
	}
}

// WithMousePositionReports delivers pure motion events to the view.
func WithMousePositionReports() Option {
	return func(v *View) {
		v.wantsMousePositionReports = true
	}
}

// WithContinuousPress re-delivers a held button press on every tick.
func WithContinuousPress() Option {
	return func(v *View) {
		v.wantsContinuousPress = true
	}
}

// WithOnDraw sets the paint hook.
func WithOnDraw(fn func(*View, *Painter)) Option {
	return func(v *View) {
		v.onDraw = fn
	}
}

// WithOnKey sets the normal-phase key handler.
func WithOnKey(fn func(*View, KeyEvent) bool) Option {
	return func(v *View) {
		v.onKey = fn
	}
}

// WithOnHotKey sets the hot-phase key handler.
func WithOnHotKey(fn func(*View, KeyEvent) bool) Option {
	return func(v *View) {
		v.onHotKey = fn
	}
}

// WithOnColdKey sets the cold-phase key handler.
func WithOnColdKey(fn func(*View, KeyEvent) bool) Option {
	return func(v *View) {
		v.onColdKey = fn
	}
}

// WithOnMouse sets the mouse handler.
func WithOnMouse(fn func(*View, MouseEvent) bool) Option {
	return func(v *View) {
		v.onMouse = fn
	}
}

// WithOnMouseEnter sets the pointer-enter hook.
func WithOnMouseEnter(fn func(*View, MouseEvent)) Option {
	return func(v *View) {
		v.onMouseEnter = fn
	}
}

// WithOnMouseLeave sets the pointer-leave hook.
func WithOnMouseLeave(fn func(*View, MouseEvent)) Option {
	return func(v *View) {
		v.onMouseLeave = fn
	}
}

// WithOnFocus sets the focus-gained hook.
func WithOnFocus(fn func(*View)) Option {
	return func(v *View) {
		v.onFocus = fn
	}
}

// WithOnBlur sets the focus-lost hook.
func WithOnBlur(fn func(*View)) Option {
	return func(v *View) {
		v.onBlur = fn
	}
}

// WithOnLayoutComplete sets the hook called after a layout pass.
func WithOnLayoutComplete(fn func(*View)) Option {
	return func(v *View) {
		v.onLayoutComplete = fn
	}
}
