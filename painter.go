package tui

// Painter draws into a view's layer during display. Every operation is
// clipped to the region being redrawn, expressed in view-local coordinates.
type Painter struct {
	layer  *Layer
	clip   Rect
	scheme ColorScheme
}

func newPainter(layer *Layer, clip Rect, scheme ColorScheme) *Painter {
	return &Painter{layer: layer, clip: clip.Intersect(layer.Bounds()), scheme: scheme}
}

// Bounds returns the full view bounds.
func (p *Painter) Bounds() Rect {
	return p.layer.Bounds()
}

// Clip returns the region being redrawn.
func (p *Painter) Clip() Rect {
	return p.clip
}

// Scheme returns the resolved color scheme of the view being drawn.
func (p *Painter) Scheme() ColorScheme {
	return p.scheme
}

// Clear fills the clip region with the layer's blank cell in the scheme's
// normal style.
func (p *Painter) Clear() {
	blank := p.layer.Blank()
	if !blank.IsTransparent() {
		blank.Style = p.scheme.Normal
	}
	p.layer.Fill(p.clip, blank)
}

// Fill sets every cell of rect to r in style.
func (p *Painter) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(p.clip)
	if rect.IsEmpty() {
		return
	}
	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				p.layer.SetRune(x, y, ' ', style)
				x++
				continue
			}
			p.layer.SetRune(x, y, r, style)
			x += width
		}
	}
}

// DrawRune places r at (x, y). A wide rune is drawn only if both of its
// cells are inside the clip region.
func (p *Painter) DrawRune(x, y int, r rune, style Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	if RuneWidth(r) == 2 && !p.clip.Contains(x+1, y) {
		return
	}
	p.layer.SetRune(x, y, r, style)
}

// DrawString writes s from (x, y) and returns the width drawn.
func (p *Painter) DrawString(x, y int, s string, style Style) int {
	return p.layer.SetStringClipped(x, y, s, style, p.clip)
}
