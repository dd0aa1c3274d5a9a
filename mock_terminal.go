package tui

import (
	"strings"
	"sync"
)

// MockTerminal is an in-memory Driver for tests. It copies the dirty rows
// of every flushed screen and records how many rows each flush wrote.
type MockTerminal struct {
	mu      sync.Mutex
	width   int
	height  int
	cells   []Cell
	flushes []int
	closed  bool
}

var _ Driver = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Resize changes the reported size and blanks the contents.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	for i := range m.cells {
		m.cells[i] = BlankCell
	}
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() Size {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Size{Width: m.width, Height: m.height}
}

// Flush copies the dirty rows of screen and clears their flags.
func (m *MockTerminal) Flush(screen *ScreenBuffer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := screen.DirtyRows()
	for _, y := range rows {
		row := screen.Row(y)
		if y < m.height {
			n := min(len(row), m.width)
			copy(m.cells[y*m.width:y*m.width+n], row[:n])
		}
		screen.ClearRowDirty(y)
	}
	m.flushes = append(m.flushes, len(rows))
	return nil
}

// Close marks the terminal closed.
func (m *MockTerminal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// --- Test helper methods ---

// Closed reports whether Close was called.
func (m *MockTerminal) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Flushes returns the number of rows written by each Flush call.
func (m *MockTerminal) Flushes() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.flushes...)
}

// CellAt returns the cell at the given position.
// Returns an empty Cell if out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String renders the terminal contents for snapshot testing.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cellsString(m.cells, m.width, m.height)
}

// StringTrimmed is String with trailing spaces removed from each line.
func (m *MockTerminal) StringTrimmed() string {
	lines := strings.Split(m.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
