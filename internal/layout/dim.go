package layout

import (
	"fmt"
	"strconv"
)

type dimKind uint8

const (
	dimSized dimKind = iota
	dimFactor
	dimFill
	dimSizeOf
	dimCombine
)

// Dimension selects the width or height of a referenced view.
type Dimension uint8

const (
	DimensionWidth Dimension = iota
	DimensionHeight
)

func (d Dimension) String() string {
	switch d {
	case DimensionWidth:
		return "Width"
	case DimensionHeight:
		return "Height"
	default:
		return "Dimension(" + strconv.Itoa(int(d)) + ")"
	}
}

// Dim is a size constraint evaluated against the extent of the container
// along one axis and the already-resolved position on that axis.
// The zero value is Sized(0).
type Dim struct {
	kind      dimKind
	n         int
	factor    float64
	remaining bool
	target    Ref
	dimension Dimension
	op        Op
	left      *Dim
	right     *Dim
}

// Sized is a fixed number of cells.
func Sized(n int) Dim {
	return Dim{kind: dimSized, n: n}
}

// Percent is a percentage of the container extent, clamped to [0, 100].
func Percent(p float64) Dim {
	return Dim{kind: dimFactor, factor: clampPercent(p)}
}

// PercentOfRemaining is a percentage of the space between the view's
// position and the far edge of the container, clamped to [0, 100].
func PercentOfRemaining(p float64) Dim {
	return Dim{kind: dimFactor, factor: clampPercent(p), remaining: true}
}

// Fill extends to the far edge of the container, less margin.
func Fill(margin int) Dim {
	return Dim{kind: dimFill, n: margin}
}

// SizeOf is the width or height of another view's frame.
func SizeOf(target Ref, dimension Dimension) Dim {
	return Dim{kind: dimSizeOf, target: target, dimension: dimension}
}

// CombineDim applies op to two dimensions evaluated against the same extent.
func CombineDim(left Dim, op Op, right Dim) Dim {
	l, r := left, right
	return Dim{kind: dimCombine, op: op, left: &l, right: &r}
}

// Add returns d + other.
func (d Dim) Add(other Dim) Dim { return CombineDim(d, OpAdd, other) }

// Sub returns d - other.
func (d Dim) Sub(other Dim) Dim { return CombineDim(d, OpSub, other) }

// Plus returns d + n.
func (d Dim) Plus(n int) Dim { return CombineDim(d, OpAdd, Sized(n)) }

// Minus returns d - n.
func (d Dim) Minus(n int) Dim { return CombineDim(d, OpSub, Sized(n)) }

// Resolve evaluates the dimension for a container of the given extent with
// the view positioned at pos. Negative results are clamped to zero.
func (d Dim) Resolve(extent, pos int, src FrameSource) int {
	return max(d.eval(extent, pos, src), 0)
}

func (d Dim) eval(extent, pos int, src FrameSource) int {
	switch d.kind {
	case dimSized:
		return d.n
	case dimFactor:
		if d.remaining {
			return int(float64(extent-pos) * d.factor)
		}
		return int(float64(extent) * d.factor)
	case dimFill:
		return extent - pos - d.n
	case dimSizeOf:
		if src == nil {
			return 0
		}
		frame, ok := src.FrameOf(d.target)
		if !ok {
			return 0
		}
		if d.dimension == DimensionHeight {
			return frame.Height
		}
		return frame.Width
	case dimCombine:
		return d.op.apply(d.left.eval(extent, pos, src), d.right.eval(extent, pos, src))
	}
	return 0
}

// Refs appends every view referenced by the expression to dst.
func (d Dim) Refs(dst []Ref) []Ref {
	switch d.kind {
	case dimSizeOf:
		return append(dst, d.target)
	case dimCombine:
		return d.right.Refs(d.left.Refs(dst))
	}
	return dst
}

func (d Dim) String() string {
	switch d.kind {
	case dimSized:
		return fmt.Sprintf("Dim.Sized(%d)", d.n)
	case dimFactor:
		if d.remaining {
			return fmt.Sprintf("Dim.PercentOfRemaining(%g)", d.factor*100)
		}
		return fmt.Sprintf("Dim.Percent(%g)", d.factor*100)
	case dimFill:
		return fmt.Sprintf("Dim.Fill(%d)", d.n)
	case dimSizeOf:
		return fmt.Sprintf("Dim.%s(%s)", d.dimension, d.target)
	case dimCombine:
		return fmt.Sprintf("(%s %s %s)", d.left, d.op, d.right)
	}
	return "Dim(?)"
}
