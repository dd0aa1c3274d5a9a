package tui

// ScreenBuffer is the composited frame. The compositor writes it; drivers
// read the dirty rows and clear them once flushed.
type ScreenBuffer struct {
	width  int
	height int
	cells  []Cell
	dirty  []bool
	blank  Cell
}

func newScreenBuffer(size Size, blank Cell) *ScreenBuffer {
	s := &ScreenBuffer{blank: blank}
	s.resize(size)
	return s
}

// resize reallocates when the size changes, leaving a blank, fully dirty
// buffer. It reports whether anything changed.
func (s *ScreenBuffer) resize(size Size) bool {
	w, h := max(size.Width, 0), max(size.Height, 0)
	if w == s.width && h == s.height && s.cells != nil {
		return false
	}
	s.width, s.height = w, h
	s.cells = make([]Cell, w*h)
	s.dirty = make([]bool, h)
	s.blankAll()
	return true
}

func (s *ScreenBuffer) blankAll() {
	for i := range s.cells {
		s.cells[i] = s.blank
	}
	for i := range s.dirty {
		s.dirty[i] = true
	}
}

// Size returns the screen dimensions.
func (s *ScreenBuffer) Size() Size {
	return Size{Width: s.width, Height: s.height}
}

// Bounds returns the full screen rect.
func (s *ScreenBuffer) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (s *ScreenBuffer) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

// Row returns row y. The slice aliases the buffer and must not be modified.
func (s *ScreenBuffer) Row(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.cells[y*s.width : (y+1)*s.width]
}

// RowDirty reports whether row y changed since it was last flushed.
func (s *ScreenBuffer) RowDirty(y int) bool {
	return y >= 0 && y < s.height && s.dirty[y]
}

// DirtyRows returns the dirty row indices in ascending order.
func (s *ScreenBuffer) DirtyRows() []int {
	var rows []int
	for y, d := range s.dirty {
		if d {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRowDirty is called by a Driver after it has written row y.
func (s *ScreenBuffer) ClearRowDirty(y int) {
	if y >= 0 && y < s.height {
		s.dirty[y] = false
	}
}

// String renders the screen as text, one line per row.
func (s *ScreenBuffer) String() string {
	return cellsString(s.cells, s.width, s.height)
}
