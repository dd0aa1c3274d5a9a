package layout

import (
	"fmt"
	"math"
)

// Ref identifies a view without holding it. Index selects an arena slot and
// Gen must match the slot's generation for the reference to be live, so a
// Ref to a released view never aliases the slot's next occupant.
// The zero Ref refers to nothing.
type Ref struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r == Ref{}
}

// String returns a compact diagnostic form such as "view#3.1".
func (r Ref) String() string {
	if r.IsZero() {
		return "view#none"
	}
	return fmt.Sprintf("view#%d.%d", r.Index, r.Gen)
}

// FrameSource resolves a Ref to the frame it currently has. Constraint
// expressions that reference another view read its frame through this
// interface; ok is false when the reference is stale.
type FrameSource interface {
	FrameOf(ref Ref) (frame Rect, ok bool)
}

// Op is the arithmetic operator of a combined expression.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
)

func (o Op) apply(a, b int) int {
	if o == OpSub {
		return a - b
	}
	return a + b
}

func (o Op) String() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

// clampPercent limits a percentage to [0, 100] and returns it as a factor.
// NaN is treated as 0.
func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p / 100
}
