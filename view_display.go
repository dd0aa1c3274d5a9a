package tui

// NeedsDisplay returns the view-local region awaiting redraw.
func (v *View) NeedsDisplay() Rect {
	return v.dirty
}

// SetNeedsDisplay marks the whole view for redraw.
func (v *View) SetNeedsDisplay() {
	v.SetNeedsDisplayRect(v.Bounds())
}

// SetNeedsDisplayRect adds r (view-local) to the dirty region. The region
// is propagated to every ancestor, translated and clipped to its bounds,
// and to every subview whose frame it overlaps.
func (v *View) SetNeedsDisplayRect(r Rect) {
	r = r.Intersect(v.Bounds())
	if r.IsEmpty() {
		return
	}
	v.addDirty(r)

	region := r
	child := v
	for p := v.Superview(); p != nil; child, p = p, p.Superview() {
		region = region.Translate(child.frame.X, child.frame.Y).Intersect(p.Bounds())
		if region.IsEmpty() {
			break
		}
		p.addDirty(region)
	}

	v.propagateDirtyDown(r)
}

// addDirty unions r into the dirty rect; a region already covered leaves
// it untouched.
func (v *View) addDirty(r Rect) {
	if v.dirty.ContainsRect(r) {
		return
	}
	v.dirty = v.dirty.Union(r)
}

func (v *View) propagateDirtyDown(r Rect) {
	for _, c := range v.Subviews() {
		sub := r.Intersect(c.frame)
		if sub.IsEmpty() {
			continue
		}
		local := sub.Translate(-c.frame.X, -c.frame.Y)
		c.addDirty(local)
		c.propagateDirtyDown(local)
	}
}

// Display redraws the dirty region of v and its subtree into v's layer.
func (v *View) Display() {
	v.mustBeLive("Display")
	v.display()
}

// display clears the dirty region, runs the draw hook, then displays each
// subview back to front and blits the overlapping part of its layer.
func (v *View) display() {
	region := v.dirty
	if region.IsEmpty() {
		return
	}

	p := newPainter(v.layer, region, v.ColorScheme())
	if v.transparent {
		v.layer.Fill(region, TransparentCell)
	} else {
		p.Clear()
	}
	if v.onDraw != nil {
		v.onDraw(v, p)
	}

	for _, c := range v.Subviews() {
		c.display()
		area := region.Intersect(c.frame)
		if area.IsEmpty() {
			continue
		}
		v.layer.Blit(c.layer, c.frame.Origin(), area, c.transparent)
		c.layer.ClearDirty()
	}

	v.dirty = Rect{}
}
