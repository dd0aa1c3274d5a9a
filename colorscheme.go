package tui

// ColorScheme holds the styles a view paints with in each state.
type ColorScheme struct {
	Normal    Style
	Focus     Style
	HotNormal Style
	HotFocus  Style
	Disabled  Style
}

// DefaultColorScheme is used when neither a view, its ancestors, nor the
// App supply one.
var DefaultColorScheme = ColorScheme{
	Normal:    NewStyle().Foreground(White).Background(Blue),
	Focus:     NewStyle().Foreground(Black).Background(Cyan),
	HotNormal: NewStyle().Foreground(BrightYellow).Background(Blue),
	HotFocus:  NewStyle().Foreground(Blue).Background(Cyan),
	Disabled:  NewStyle().Foreground(BrightBlack).Background(Blue),
}

// Style returns the style for a view in the given state.
func (cs ColorScheme) Style(focused, hot bool) Style {
	switch {
	case focused && hot:
		return cs.HotFocus
	case focused:
		return cs.Focus
	case hot:
		return cs.HotNormal
	default:
		return cs.Normal
	}
}

// Dimmed derives a Disabled style by blending Normal's foreground halfway
// toward its background.
func (cs ColorScheme) Dimmed() ColorScheme {
	fg := cs.Normal.Fg
	if fg.IsDefault() || cs.Normal.Bg.IsDefault() {
		cs.Disabled = cs.Normal.Dim()
		return cs
	}
	cs.Disabled = cs.Normal.Foreground(fg.Blend(cs.Normal.Bg, 0.5))
	return cs
}
