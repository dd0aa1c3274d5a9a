package tui

import "strings"

// Layer is the retained cell grid a single view paints into, with one dirty
// flag per row. The compositor and parent views only copy rows whose flag
// is set.
type Layer struct {
	width  int
	height int
	cells  []Cell
	dirty  []bool
	blank  Cell
}

// NewLayer creates a layer filled with blank and every row marked dirty.
func NewLayer(width, height int, blank Cell) *Layer {
	width, height = max(width, 0), max(height, 0)
	l := &Layer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		dirty:  make([]bool, height),
		blank:  blank,
	}
	l.Clear()
	return l
}

// Width returns the layer width in cells.
func (l *Layer) Width() int { return l.width }

// Height returns the layer height in cells.
func (l *Layer) Height() int { return l.height }

// Size returns the layer dimensions.
func (l *Layer) Size() Size {
	return Size{Width: l.width, Height: l.height}
}

// Bounds returns the layer rect at origin zero.
func (l *Layer) Bounds() Rect {
	return Rect{Width: l.width, Height: l.height}
}

// Blank returns the cell used by Clear.
func (l *Layer) Blank() Cell { return l.blank }

// Resize reallocates the layer when its size changes. The new contents are
// blank and every row is dirty. It reports whether anything changed.
func (l *Layer) Resize(width, height int) bool {
	width, height = max(width, 0), max(height, 0)
	if width == l.width && height == l.height {
		return false
	}
	l.width, l.height = width, height
	l.cells = make([]Cell, width*height)
	l.dirty = make([]bool, height)
	l.Clear()
	return true
}

func (l *Layer) inBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (l *Layer) Cell(x, y int) Cell {
	if !l.inBounds(x, y) {
		return Cell{}
	}
	return l.cells[y*l.width+x]
}

// Row returns row y. The slice aliases the layer and must not be modified.
func (l *Layer) Row(y int) []Cell {
	if y < 0 || y >= l.height {
		return nil
	}
	return l.cells[y*l.width : (y+1)*l.width]
}

// SetCell stores c at (x, y) and marks the row dirty.
func (l *Layer) SetCell(x, y int, c Cell) {
	if !l.inBounds(x, y) {
		return
	}
	l.cells[y*l.width+x] = c
	l.dirty[y] = true
}

// SetRune places r at (x, y), keeping wide runes and their continuation
// cells consistent. A wide rune that does not fit in the last column is
// replaced by a space.
func (l *Layer) SetRune(x, y int, r rune, style Style) {
	if !l.inBounds(x, y) {
		return
	}

	width := RuneWidth(r)
	cur := l.Cell(x, y)

	if cur.IsContinuation() {
		l.clearWideAt(x, y)
	}
	if cur.Width == 2 && x+1 < l.width {
		l.SetCell(x+1, y, l.blankWith(style))
	}

	if width == 2 {
		if x+1 >= l.width {
			l.SetCell(x, y, NewCell(' ', style))
			return
		}
		next := l.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			l.clearWideAt(x+1, y)
		}
	}

	l.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		l.SetCell(x+1, y, Cell{Style: style, Width: 0})
	}
}

// clearWideAt blanks both halves of the wide rune covering (x, y).
func (l *Layer) clearWideAt(x, y int) {
	start := x
	if l.Cell(x, y).IsContinuation() && x > 0 {
		start = x - 1
	}
	l.SetCell(start, y, l.blank)
	if start+1 < l.width {
		l.SetCell(start+1, y, l.blank)
	}
}

func (l *Layer) blankWith(style Style) Cell {
	c := l.blank
	c.Style = style
	return c
}

// SetString writes s starting at (x, y) and returns the width consumed.
// Runes left of column 0 are skipped; writing stops at the right edge or
// at a wide rune that would not fit.
func (l *Layer) SetString(x, y int, s string, style Style) int {
	return l.SetStringClipped(x, y, s, style, l.Bounds())
}

// SetStringClipped is SetString restricted to clip.
func (l *Layer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(l.Bounds())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX < clip.X {
			curX += width
			continue
		}
		if width == 2 && curX+1 >= clip.Right() {
			break
		}
		l.SetRune(curX, y, r, style)
		curX += width
		total += width
	}
	return total
}

// Fill sets every cell of rect to c.
func (l *Layer) Fill(rect Rect, c Cell) {
	rect = rect.Intersect(l.Bounds())
	if rect.IsEmpty() {
		return
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		row := l.cells[y*l.width : (y+1)*l.width]
		for x := rect.X; x < rect.Right(); x++ {
			row[x] = c
		}
		l.dirty[y] = true
	}
}

// Clear fills the layer with its blank cell and marks every row dirty.
func (l *Layer) Clear() {
	for i := range l.cells {
		l.cells[i] = l.blank
	}
	l.MarkAllDirty()
}

// ClearRect fills rect with the blank cell.
func (l *Layer) ClearRect(rect Rect) {
	l.Fill(rect, l.blank)
}

// RowDirty reports whether row y changed since the last ClearDirty.
func (l *Layer) RowDirty(y int) bool {
	return y >= 0 && y < l.height && l.dirty[y]
}

// MarkRowDirty flags row y.
func (l *Layer) MarkRowDirty(y int) {
	if y >= 0 && y < l.height {
		l.dirty[y] = true
	}
}

// MarkAllDirty flags every row.
func (l *Layer) MarkAllDirty() {
	for i := range l.dirty {
		l.dirty[i] = true
	}
}

// ClearDirty resets every row flag.
func (l *Layer) ClearDirty() {
	clear(l.dirty)
}

// DirtyRows returns the indices of the dirty rows in ascending order.
func (l *Layer) DirtyRows() []int {
	var rows []int
	for y, d := range l.dirty {
		if d {
			rows = append(rows, y)
		}
	}
	return rows
}

// Blit copies the part of src that lands inside clip (in l's coordinates)
// with src's origin placed at at. Transparent cells of src are skipped when
// transparent is set. Rows written are marked dirty.
func (l *Layer) Blit(src *Layer, at Point, clip Rect, transparent bool) {
	area := clip.Intersect(l.Bounds()).Intersect(RectFrom(at, src.Size()))
	if area.IsEmpty() {
		return
	}
	for y := area.Y; y < area.Bottom(); y++ {
		srcRow := src.Row(y - at.Y)
		dst := l.cells[y*l.width+area.X : y*l.width+area.Right()]
		from := srcRow[area.X-at.X : area.Right()-at.X]
		if !transparent {
			copy(dst, from)
		} else {
			for i, c := range from {
				if !c.IsTransparent() {
					dst[i] = c
				}
			}
		}
		l.dirty[y] = true
	}
}

// String renders the layer as text, one line per row.
func (l *Layer) String() string {
	return cellsString(l.cells, l.width, l.height)
}

func cellsString(cells []Cell, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
		if y < height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
