package tui

import (
	"errors"
	"slices"

	"github.com/grindlemire/termkit/internal/debug"
	"github.com/grindlemire/termkit/internal/layout"
)

// Frame returns the view rect in superview coordinates.
func (v *View) Frame() Rect {
	return v.frame
}

// Bounds returns the view rect in its own coordinates (origin zero).
func (v *View) Bounds() Rect {
	return Rect{Width: v.frame.Width, Height: v.frame.Height}
}

// X returns the X constraint.
func (v *View) X() Pos { return v.x }

// Y returns the Y constraint.
func (v *View) Y() Pos { return v.y }

// Width returns the Width constraint.
func (v *View) Width() Dim { return v.width }

// Height returns the Height constraint.
func (v *View) Height() Dim { return v.height }

// LayoutStyle returns how v's frame is determined.
func (v *View) LayoutStyle() LayoutStyle {
	return v.layoutStyle
}

// SetFrame switches v to absolute layout with frame r.
func (v *View) SetFrame(r Rect) {
	if v.layoutStyle != LayoutAbsolute {
		v.layoutStyle = LayoutAbsolute
	}
	v.snapshotConstraints(r)
	if v.setFrame(r) {
		v.SetNeedsLayout()
	}
}

// SetLayoutStyle switches layout mode. The constraints are replaced by the
// current frame so the view does not move.
func (v *View) SetLayoutStyle(style LayoutStyle) {
	if v.layoutStyle == style {
		return
	}
	v.snapshotConstraints(v.frame)
	v.layoutStyle = style
	v.SetNeedsLayout()
}

func (v *View) snapshotConstraints(r Rect) {
	v.x = layout.Absolute(r.X)
	v.y = layout.Absolute(r.Y)
	v.width = layout.Sized(r.Width)
	v.height = layout.Sized(r.Height)
}

// SetX sets the X constraint and switches to computed layout.
func (v *View) SetX(p Pos) { v.setConstraint(func() { v.x = p }) }

// SetY sets the Y constraint and switches to computed layout.
func (v *View) SetY(p Pos) { v.setConstraint(func() { v.y = p }) }

// SetWidth sets the Width constraint and switches to computed layout.
func (v *View) SetWidth(d Dim) { v.setConstraint(func() { v.width = d }) }

// SetHeight sets the Height constraint and switches to computed layout.
func (v *View) SetHeight(d Dim) { v.setConstraint(func() { v.height = d }) }

func (v *View) setConstraint(assign func()) {
	v.SetLayoutStyle(LayoutComputed)
	assign()
	v.SetNeedsLayout()
}

// setFrame stores r and resizes the layer. Layout and display are only
// invalidated when the rect actually changes.
func (v *View) setFrame(r Rect) bool {
	if r == v.frame {
		return false
	}
	old := v.frame
	v.frame = r
	v.layer.Resize(r.Width, r.Height)
	v.needsLayout = true
	v.dirty = Rect{}
	v.SetNeedsDisplay()
	if p := v.Superview(); p != nil {
		p.SetNeedsDisplayRect(old)
	}
	return true
}

// NeedsLayout reports whether v or a descendant awaits a layout pass.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// SetNeedsLayout flags v and every ancestor for layout.
func (v *View) SetNeedsLayout() {
	for cur := v; cur != nil; cur = cur.Superview() {
		cur.needsLayout = true
	}
}

// containerFrames resolves references during a layout pass. The container
// itself resolves to its bounds so children can reference their parent.
type containerFrames struct {
	arena     *Arena
	container ViewID
	bounds    Rect
}

func (f containerFrames) FrameOf(ref layout.Ref) (Rect, bool) {
	if ref == f.container {
		return f.bounds, true
	}
	return f.arena.FrameOf(ref)
}

// resolveFrame evaluates v's constraints inside bounds. A centred axis
// resolves its size first so the view is centred as a whole.
func (v *View) resolveFrame(bounds Rect, src layout.FrameSource) Rect {
	x, w := resolveAxis(v.x, v.width, bounds.Width, src)
	y, h := resolveAxis(v.y, v.height, bounds.Height, src)
	return NewRect(x, y, w, h)
}

func resolveAxis(p Pos, d Dim, extent int, src layout.FrameSource) (pos, size int) {
	if p.IsCentered() {
		size = d.Resolve(extent, 0, src)
		return p.Anchor(extent, size, src), size
	}
	pos = p.Resolve(extent, src)
	return pos, d.Resolve(extent, pos, src)
}

func (v *View) constraintRefs(dst []ViewID) []ViewID {
	dst = v.x.Refs(dst)
	dst = v.y.Refs(dst)
	dst = v.width.Refs(dst)
	return v.height.Refs(dst)
}

// LayoutSubviews resolves the frames of v's computed subviews in
// dependency order, then lays out each subview that needs it. A dependency
// cycle returns *RecursiveLayoutError and leaves every frame unchanged.
// Errors from subviews are joined; their siblings are still laid out.
func (v *View) LayoutSubviews() error {
	v.mustBeLive("LayoutSubviews")

	children := slices.Clone(v.children)
	nodes := make([]layout.Ref, 0, len(children))
	var edges []layout.Edge
	var refs []ViewID
	labels := map[layout.Ref]string{}
	for _, id := range children {
		c := v.lookup(id)
		if c == nil {
			continue
		}
		nodes = append(nodes, id)
		if c.name != "" {
			labels[id] = c.name
		}
		if c.layoutStyle != LayoutComputed {
			continue
		}
		refs = c.constraintRefs(refs[:0])
		for _, r := range refs {
			if r == v.id {
				continue
			}
			edges = append(edges, layout.Edge{From: r, To: id})
			if rv := v.lookup(r); rv != nil && rv.name != "" {
				labels[r] = rv.name
			}
		}
	}

	order, err := layout.Sort(nodes, edges)
	if err != nil {
		var cycle *RecursiveLayoutError
		if errors.As(err, &cycle) {
			cycle.Container = v.String()
			cycle.Labels = labels
		}
		// Reported once; a constraint change flags the container again.
		v.needsLayout = false
		debug.Log("View.LayoutSubviews: %v", err)
		return err
	}

	src := containerFrames{arena: v.arena, container: v.id, bounds: v.Bounds()}
	var errs []error
	for _, id := range order {
		c := v.lookup(id)
		if c == nil || c.parent != v.id {
			continue
		}
		if c.layoutStyle == LayoutComputed {
			c.setFrame(c.resolveFrame(src.bounds, src))
		}
		if c.needsLayout {
			if err := c.LayoutSubviews(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	v.needsLayout = false
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if v.onLayoutComplete != nil {
		v.onLayoutComplete(v)
	}
	return nil
}
