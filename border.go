package tui

// BorderStyle selects the box-drawing characters used by DrawBox.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// borderSets is indexed by BorderStyle; runes are listed
// top-left, top, top-right, side, bottom-left, bottom-right.
var borderSets = map[BorderStyle][6]rune{
	BorderSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	BorderDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	BorderRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	BorderThick:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

// Chars returns the characters for b. BorderNone and unknown styles are
// all spaces.
func (b BorderStyle) Chars() BorderChars {
	set, ok := borderSets[b]
	if !ok {
		set = [6]rune{' ', ' ', ' ', ' ', ' ', ' '}
	}
	return BorderChars{
		TopLeft:     set[0],
		Top:         set[1],
		TopRight:    set[2],
		Left:        set[3],
		Right:       set[3],
		BottomLeft:  set[4],
		Bottom:      set[1],
		BottomRight: set[5],
	}
}

// DrawBox draws a border along the edge of rect. Rects smaller than 2x2
// and BorderNone draw nothing.
func (p *Painter) DrawBox(rect Rect, border BorderStyle, style Style) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}
	chars := border.Chars()

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	p.DrawRune(left, top, chars.TopLeft, style)
	p.DrawRune(right, top, chars.TopRight, style)
	p.DrawRune(left, bottom, chars.BottomLeft, style)
	p.DrawRune(right, bottom, chars.BottomRight, style)

	for x := left + 1; x < right; x++ {
		p.DrawRune(x, top, chars.Top, style)
		p.DrawRune(x, bottom, chars.Bottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		p.DrawRune(left, y, chars.Left, style)
		p.DrawRune(right, y, chars.Right, style)
	}
}
