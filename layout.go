// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/termkit/internal/layout"

// ViewID is a generational handle to a View in an Arena.
type ViewID = layout.Ref

// NoView is the zero ViewID.
var NoView ViewID

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Pos is a position constraint.
type Pos = layout.Pos

// Dim is a size constraint.
type Dim = layout.Dim

// RecursiveLayoutError is returned when sibling constraints form a cycle.
type RecursiveLayoutError = layout.RecursiveLayoutError

// NewRect creates a Rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// At is an absolute position.
func At(n int) Pos {
	return layout.Absolute(n)
}

// PosPercent is a position at p percent of the container extent.
func PosPercent(p float64) Pos {
	return layout.PosPercent(p)
}

// Center centres the view in its container.
func Center() Pos {
	return layout.Center()
}

// AnchorEnd is margin cells back from the container's far edge.
func AnchorEnd(margin int) Pos {
	return layout.AnchorEnd(margin)
}

// LeftOf is the left edge of v's frame.
func LeftOf(v *View) Pos {
	return layout.EdgeOf(v.ID(), layout.SideLeft)
}

// TopOf is the top edge of v's frame.
func TopOf(v *View) Pos {
	return layout.EdgeOf(v.ID(), layout.SideTop)
}

// RightOf is the right edge of v's frame (exclusive).
func RightOf(v *View) Pos {
	return layout.EdgeOf(v.ID(), layout.SideRight)
}

// BottomOf is the bottom edge of v's frame (exclusive).
func BottomOf(v *View) Pos {
	return layout.EdgeOf(v.ID(), layout.SideBottom)
}

// Sized is a fixed number of cells.
func Sized(n int) Dim {
	return layout.Sized(n)
}

// Percent is p percent of the container extent.
func Percent(p float64) Dim {
	return layout.Percent(p)
}

// PercentOfRemaining is p percent of the space after the view's position.
func PercentOfRemaining(p float64) Dim {
	return layout.PercentOfRemaining(p)
}

// Fill extends to the container's far edge less margin.
func Fill(margin int) Dim {
	return layout.Fill(margin)
}

// WidthOf is the width of v's frame.
func WidthOf(v *View) Dim {
	return layout.SizeOf(v.ID(), layout.DimensionWidth)
}

// HeightOf is the height of v's frame.
func HeightOf(v *View) Dim {
	return layout.SizeOf(v.ID(), layout.DimensionHeight)
}

// RectFrom builds a Rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return layout.RectFrom(origin, size)
}
