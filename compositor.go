package tui

import "github.com/grindlemire/termkit/internal/debug"

// Compositor merges the layers of the toplevel stack into a ScreenBuffer.
type Compositor struct {
	screen *ScreenBuffer
	// frames of the toplevels composited last time, bottom to top
	last []compositedFrame
}

type compositedFrame struct {
	id    ViewID
	frame Rect
}

// NewCompositor creates a compositor with a blank screen of the given size.
func NewCompositor(size Size, blank Cell) *Compositor {
	return &Compositor{screen: newScreenBuffer(size, blank)}
}

// Screen returns the composited frame.
func (c *Compositor) Screen() *ScreenBuffer {
	return c.screen
}

// Resize changes the screen size; a change blanks the screen and marks
// every row dirty.
func (c *Compositor) Resize(size Size) bool {
	if !c.screen.resize(size) {
		return false
	}
	c.last = nil
	return true
}

// Invalidate blanks the screen and marks every row dirty so the next
// Composite copies every visible row.
func (c *Compositor) Invalidate() {
	c.screen.blankAll()
	c.last = nil
}

// Composite copies the visible toplevels into the screen, bottom to top,
// and returns the number of rows copied. Toplevels below the topmost opaque
// one covering the whole screen are skipped without being read. Transparent
// cells of a transparent toplevel leave the cells beneath them in place. A row is
// copied only if the screen row or the layer row is dirty; copying marks
// the screen row dirty so toplevels above overwrite it. Source layer dirty
// flags are cleared; screen flags are left for the driver.
func (c *Compositor) Composite(tops []*Toplevel) int {
	s := c.screen
	full := s.Bounds()
	visible := tops[c.VisibleFrom(tops):]

	if c.stackChanged(visible) {
		c.Invalidate()
		c.remember(visible)
	}
	c.reopenBehindTransparent(visible)

	copied := 0
	for _, t := range visible {
		f := t.frame
		area := f.Intersect(full)
		layer := t.layer
		for y := area.Y; y < area.Bottom(); y++ {
			ly := y - f.Y
			if !s.dirty[y] && !layer.RowDirty(ly) {
				continue
			}
			src := layer.Row(ly)[area.X-f.X : area.Right()-f.X]
			dst := s.cells[y*s.width+area.X : y*s.width+area.Right()]
			if t.transparent {
				for i, cell := range src {
					if !cell.IsTransparent() {
						dst[i] = cell
					}
				}
			} else {
				copy(dst, src)
			}
			s.dirty[y] = true
			copied++
		}
		layer.ClearDirty()
	}
	if copied > 0 {
		debug.Log("Compositor.Composite: %d rows from %d of %d toplevels", copied, len(visible), len(tops))
	}
	return copied
}

// VisibleFrom returns the index of the lowest toplevel that can show
// through: the topmost opaque toplevel covering the whole screen, or 0.
func (c *Compositor) VisibleFrom(tops []*Toplevel) int {
	full := c.screen.Bounds()
	for i := len(tops) - 1; i >= 0; i-- {
		if tops[i].frame == full && !tops[i].transparent {
			return i
		}
	}
	return 0
}

// reopenBehindTransparent blanks every screen row where a transparent
// toplevel has a dirty layer row, so the toplevels beneath it are copied
// again before it is drawn on top.
func (c *Compositor) reopenBehindTransparent(visible []*Toplevel) {
	s := c.screen
	full := s.Bounds()
	for _, t := range visible {
		if !t.transparent {
			continue
		}
		area := t.frame.Intersect(full)
		for y := area.Y; y < area.Bottom(); y++ {
			if s.dirty[y] || !t.layer.RowDirty(y-t.frame.Y) {
				continue
			}
			row := s.cells[y*s.width : (y+1)*s.width]
			for i := range row {
				row[i] = s.blank
			}
			s.dirty[y] = true
		}
	}
}

// stackChanged reports whether the visible toplevels or their frames differ
// from the previous pass, which leaves stale cells a blank redraw must clear.
func (c *Compositor) stackChanged(visible []*Toplevel) bool {
	if len(visible) != len(c.last) {
		return true
	}
	for i, t := range visible {
		if c.last[i].id != t.id || c.last[i].frame != t.frame {
			return true
		}
	}
	return false
}

func (c *Compositor) remember(visible []*Toplevel) {
	c.last = c.last[:0]
	for _, t := range visible {
		c.last = append(c.last, compositedFrame{id: t.id, frame: t.frame})
	}
}
