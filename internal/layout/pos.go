package layout

import (
	"fmt"
	"strconv"
)

type posKind uint8

const (
	posAbsolute posKind = iota
	posFactor
	posAnchorEnd
	posCenter
	posEdge
	posCombine
)

// Side names an edge of a referenced view.
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideTop:
		return "Top"
	case SideRight:
		return "Right"
	case SideBottom:
		return "Bottom"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// Pos is a position constraint evaluated against the extent of the
// container along one axis. The zero value is Absolute(0).
type Pos struct {
	kind   posKind
	n      int
	factor float64
	target Ref
	side   Side
	op     Op
	left   *Pos
	right  *Pos
}

// Absolute is a fixed offset from the container origin.
func Absolute(n int) Pos {
	return Pos{kind: posAbsolute, n: n}
}

// PosPercent is a percentage of the container extent, clamped to [0, 100].
func PosPercent(p float64) Pos {
	return Pos{kind: posFactor, factor: clampPercent(p)}
}

// AnchorEnd is measured back from the far edge of the container.
func AnchorEnd(margin int) Pos {
	return Pos{kind: posAnchorEnd, n: margin}
}

// Center places the view so that it is centred in the container once its
// own size is known.
func Center() Pos {
	return Pos{kind: posCenter}
}

// EdgeOf is the given edge of another view's frame.
func EdgeOf(target Ref, side Side) Pos {
	return Pos{kind: posEdge, target: target, side: side}
}

// Combine applies op to two positions evaluated against the same extent.
func Combine(left Pos, op Op, right Pos) Pos {
	l, r := left, right
	return Pos{kind: posCombine, op: op, left: &l, right: &r}
}

// Add returns p + other.
func (p Pos) Add(other Pos) Pos { return Combine(p, OpAdd, other) }

// Sub returns p - other.
func (p Pos) Sub(other Pos) Pos { return Combine(p, OpSub, other) }

// Plus returns p + n.
func (p Pos) Plus(n int) Pos { return Combine(p, OpAdd, Absolute(n)) }

// Minus returns p - n.
func (p Pos) Minus(n int) Pos { return Combine(p, OpSub, Absolute(n)) }

// Resolve evaluates the position for a container of the given extent.
// Center resolves to extent/2 here; use Anchor when the view size is known.
func (p Pos) Resolve(extent int, src FrameSource) int {
	switch p.kind {
	case posAbsolute:
		return p.n
	case posFactor:
		return int(float64(extent) * p.factor)
	case posAnchorEnd:
		return extent - p.n
	case posCenter:
		return extent / 2
	case posEdge:
		return edgeOf(p.target, p.side, src)
	case posCombine:
		return p.op.apply(p.left.Resolve(extent, src), p.right.Resolve(extent, src))
	}
	return 0
}

// Anchor evaluates the position for a view of the given size. It differs
// from Resolve only for Center leaves, which yield (extent-size)/2.
func (p Pos) Anchor(extent, size int, src FrameSource) int {
	switch p.kind {
	case posCenter:
		return (extent - size) / 2
	case posCombine:
		return p.op.apply(p.left.Anchor(extent, size, src), p.right.Anchor(extent, size, src))
	}
	return p.Resolve(extent, src)
}

// IsCentered reports whether the expression contains a Center leaf.
func (p Pos) IsCentered() bool {
	switch p.kind {
	case posCenter:
		return true
	case posCombine:
		return p.left.IsCentered() || p.right.IsCentered()
	}
	return false
}

// Refs appends every view referenced by the expression to dst.
func (p Pos) Refs(dst []Ref) []Ref {
	switch p.kind {
	case posEdge:
		return append(dst, p.target)
	case posCombine:
		return p.right.Refs(p.left.Refs(dst))
	}
	return dst
}

func (p Pos) String() string {
	switch p.kind {
	case posAbsolute:
		return fmt.Sprintf("Pos.Absolute(%d)", p.n)
	case posFactor:
		return fmt.Sprintf("Pos.Percent(%g)", p.factor*100)
	case posAnchorEnd:
		return fmt.Sprintf("Pos.AnchorEnd(%d)", p.n)
	case posCenter:
		return "Pos.Center()"
	case posEdge:
		return fmt.Sprintf("Pos.%s(%s)", p.side, p.target)
	case posCombine:
		return fmt.Sprintf("(%s %s %s)", p.left, p.op, p.right)
	}
	return "Pos(?)"
}

func edgeOf(target Ref, side Side, src FrameSource) int {
	if src == nil {
		return 0
	}
	frame, ok := src.FrameOf(target)
	if !ok {
		return 0
	}
	switch side {
	case SideLeft:
		return frame.MinX()
	case SideTop:
		return frame.MinY()
	case SideRight:
		return frame.MaxX()
	case SideBottom:
		return frame.MaxY()
	}
	return 0
}
