package tui

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// Style is the flat attribute record attached to every Cell.
// The zero value is default colors with no attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns s with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns s with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Without returns s with the given attributes removed.
func (s Style) Without(a Attr) Style {
	s.Attrs &^= a
	return s
}

func (s Style) Bold() Style      { return s.With(AttrBold) }
func (s Style) Dim() Style       { return s.With(AttrDim) }
func (s Style) Italic() Style    { return s.With(AttrItalic) }
func (s Style) Underline() Style { return s.With(AttrUnderline) }
func (s Style) Reverse() Style   { return s.With(AttrReverse) }

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr returns true if every bit of a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}
