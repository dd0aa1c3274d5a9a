package layout

import "testing"

func TestNewRect_ClampsNegativeSize(t *testing.T) {
	type tc struct {
		x, y, w, h int
		expected   Rect
	}

	tests := map[string]tc{
		"standard rect": {
			x: 5, y: 10, w: 20, h: 15,
			expected: Rect{X: 5, Y: 10, Width: 20, Height: 15},
		},
		"negative width": {
			x: 0, y: 0, w: -5, h: 10,
			expected: Rect{X: 0, Y: 0, Width: 0, Height: 10},
		},
		"negative height": {
			x: 1, y: 2, w: 10, h: -5,
			expected: Rect{X: 1, Y: 2, Width: 10, Height: 0},
		},
		"negative position kept": {
			x: -5, y: -5, w: 10, h: 10,
			expected: Rect{X: -5, Y: -5, Width: 10, Height: 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewRect(tt.x, tt.y, tt.w, tt.h)
			if got != tt.expected {
				t.Errorf("NewRect(%d, %d, %d, %d) = %+v, want %+v", tt.x, tt.y, tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 4, 21, 9)

	checks := map[string]struct{ got, want int }{
		"MinX": {r.MinX(), 10},
		"MidX": {r.MidX(), 20},
		"MaxX": {r.MaxX(), 31},
		"MinY": {r.MinY(), 4},
		"MidY": {r.MidY(), 8},
		"MaxY": {r.MaxY(), 13},
	}
	for name, c := range checks {
		if c.got != c.want {
			t.Errorf("%s() = %d, want %d", name, c.got, c.want)
		}
	}
	if r.Origin() != (Point{X: 10, Y: 4}) {
		t.Errorf("Origin() = %+v", r.Origin())
	}
	if r.Size() != (Size{Width: 21, Height: 9}) {
		t.Errorf("Size() = %+v", r.Size())
	}
}

func TestRect_IsEmptyAndArea(t *testing.T) {
	type tc struct {
		rect    Rect
		isEmpty bool
		area    int
	}

	tests := map[string]tc{
		"standard":     {rect: NewRect(0, 0, 10, 5), isEmpty: false, area: 50},
		"zero width":   {rect: NewRect(0, 0, 0, 10), isEmpty: true, area: 0},
		"zero height":  {rect: NewRect(0, 0, 10, 0), isEmpty: true, area: 0},
		"raw negative": {rect: Rect{Width: -3, Height: 4}, isEmpty: true, area: 0},
		"single cell":  {rect: NewRect(3, 3, 1, 1), isEmpty: false, area: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y     int
		expected bool
	}

	tests := map[string]tc{
		"center":           {x: 20, y: 20, expected: true},
		"top-left corner":  {x: 10, y: 10, expected: true},
		"right edge":       {x: 30, y: 15, expected: false},
		"bottom edge":      {x: 15, y: 30, expected: false},
		"last inside cell": {x: 29, y: 29, expected: true},
		"left of rect":     {x: 9, y: 15, expected: false},
		"above rect":       {x: 15, y: 9, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
			if got := r.ContainsPoint(Point{X: tt.x, Y: tt.y}); got != tt.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}

	if NewRect(0, 0, 0, 5).Contains(0, 0) {
		t.Error("empty rect should contain no point")
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		outer, inner Rect
		expected     bool
	}

	tests := map[string]tc{
		"fully inside":    {outer: NewRect(0, 0, 10, 10), inner: NewRect(2, 2, 3, 3), expected: true},
		"identical":       {outer: NewRect(0, 0, 10, 10), inner: NewRect(0, 0, 10, 10), expected: true},
		"overhangs right": {outer: NewRect(0, 0, 10, 10), inner: NewRect(8, 0, 3, 3), expected: false},
		"empty inner":     {outer: NewRect(0, 0, 10, 10), inner: Rect{}, expected: true},
		"empty outer":     {outer: Rect{}, inner: NewRect(0, 0, 1, 1), expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.outer.ContainsRect(tt.inner); got != tt.expected {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
		},
		"same rect": {
			a:        NewRect(10, 10, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 20, 20),
		},
		"one inside other": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 20, 20),
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: Rect{},
		},
		"touching edges": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
		"empty operand short-circuits": {
			a:        NewRect(5, 5, 0, 10),
			b:        NewRect(0, 0, 100, 100),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

// TestRect_IntersectProperties checks symmetry and the emptiness/intersects
// equivalence over a grid of rects, including empty ones.
func TestRect_IntersectProperties(t *testing.T) {
	var rects []Rect
	for x := -2; x <= 6; x += 2 {
		for y := -2; y <= 6; y += 3 {
			for w := 0; w <= 6; w += 3 {
				for h := 0; h <= 4; h += 2 {
					rects = append(rects, NewRect(x, y, w, h))
				}
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			ab := a.Intersect(b)
			ba := b.Intersect(a)
			if ab != ba {
				t.Fatalf("Intersect not symmetric: %+v ∩ %+v = %+v, reversed %+v", a, b, ab, ba)
			}
			if ab.IsEmpty() != !a.Intersects(b) {
				t.Fatalf("IsEmpty/Intersects mismatch for %+v, %+v", a, b)
			}
			if !ab.IsEmpty() && (!a.ContainsRect(ab) || !b.ContainsRect(ab)) {
				t.Fatalf("intersection %+v escapes operands %+v, %+v", ab, a, b)
			}
		}
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(0, 0, 15, 15),
		},
		"disjoint": {
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(8, 6, 2, 2),
			expected: NewRect(0, 0, 10, 8),
		},
		"empty left": {
			a:        Rect{},
			b:        NewRect(3, 3, 2, 2),
			expected: NewRect(3, 3, 2, 2),
		},
		"empty right": {
			a:        NewRect(3, 3, 2, 2),
			b:        NewRect(50, 50, 0, 0),
			expected: NewRect(3, 3, 2, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_TranslateAndInset(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if got := r.Translate(5, -10); got != NewRect(15, 10, 30, 40) {
		t.Errorf("Translate() = %+v", got)
	}
	if got := r.Inset(EdgeAll(2)); got != NewRect(12, 22, 26, 36) {
		t.Errorf("Inset(2) = %+v", got)
	}
	if got := NewRect(0, 0, 3, 3).Inset(EdgeAll(2)); !got.IsEmpty() {
		t.Errorf("over-inset should be empty, got %+v", got)
	}
	if got := r.WithOrigin(Point{X: 1, Y: 2}); got != NewRect(1, 2, 30, 40) {
		t.Errorf("WithOrigin() = %+v", got)
	}
}

func TestRect_Clamp(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y         int
		wantX, wantY int
	}

	tests := map[string]tc{
		"inside":      {x: 15, y: 15, wantX: 15, wantY: 15},
		"left above":  {x: 0, y: 0, wantX: 10, wantY: 10},
		"right below": {x: 100, y: 100, wantX: 29, wantY: 29},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, y := r.Clamp(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPointAndSize(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1, Y: 1}); got != (Point{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := p.Sub(Point{X: 3, Y: 4}); got != (Point{}) {
		t.Errorf("Sub() = %+v", got)
	}
	if !p.In(NewRect(0, 0, 5, 5)) {
		t.Error("In() = false, want true")
	}

	if got := NewSize(-1, 4); got != (Size{Width: 0, Height: 4}) {
		t.Errorf("NewSize clamps, got %+v", got)
	}
	if !NewSize(0, 4).IsEmpty() {
		t.Error("zero-width size should be empty")
	}
	if NewSize(2, 3).Area() != 6 {
		t.Error("Area() != 6")
	}
}
