package tui

import "github.com/mattn/go-runewidth"

// Cell is one character cell of a Layer or the screen.
// Wide runes occupy two cells: the first holds the rune with Width 2 and
// the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// TransparentCell marks a cell that a transparent view leaves untouched
// when it is blitted into its container.
var TransparentCell = Cell{Rune: 0, Width: 1}

// BlankCell is the default fill for new layers and cleared regions.
var BlankCell = Cell{Rune: ' ', Width: 1}

// NewCell creates a Cell, measuring the rune with go-runewidth.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// RuneWidth returns the number of cells r occupies: 1 or 2. Control and
// zero-width runes still take one cell so they remain addressable.
func RuneWidth(r rune) int {
	if r == 0 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsTransparent reports whether c is TransparentCell.
func (c Cell) IsTransparent() bool {
	return c.Rune == 0 && c.Width != 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}
