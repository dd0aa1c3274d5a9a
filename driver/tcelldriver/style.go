package tcelldriver

import (
	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/termkit"
)

// Style converts a tui.Style to a tcell.Style.
func Style(s tui.Style) tcell.Style {
	st := tcell.StyleDefault.Foreground(Color(s.Fg)).Background(Color(s.Bg))
	if s.HasAttr(tui.AttrBold) {
		st = st.Bold(true)
	}
	if s.HasAttr(tui.AttrDim) {
		st = st.Dim(true)
	}
	if s.HasAttr(tui.AttrItalic) {
		st = st.Italic(true)
	}
	if s.HasAttr(tui.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.HasAttr(tui.AttrBlink) {
		st = st.Blink(true)
	}
	if s.HasAttr(tui.AttrReverse) {
		st = st.Reverse(true)
	}
	if s.HasAttr(tui.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}

// Color converts a tui.Color to a tcell.Color.
func Color(c tui.Color) tcell.Color {
	switch c.Type() {
	case tui.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case tui.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}
