// pkg/physics/rect_test.go
package physics

import "testing"

func TestNewRectFromEdges(t *testing.T) {
	r := NewRectFromEdges(10, 20, 100, 60)

	if r.Left() != 10 || r.Top() != 20 || r.Right() != 110 || r.Bottom() != 80 {
		t.Errorf("edges = (%v, %v, %v, %v), expected (10, 20, 110, 80)",
			r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	if r.Center.X != 60 || r.Center.Y != 50 {
		t.Errorf("Center = %v, expected {60 50}", r.Center)
	}
}

func TestRect_Contains(t *testing.T) {
	arena := NewRectFromEdges(0, 0, 200, 100)

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{name: "center", point: Vector2D{X: 100, Y: 50}, expected: true},
		{name: "on_left_edge", point: Vector2D{X: 0, Y: 50}, expected: true},
		{name: "on_bottom_right_corner", point: Vector2D{X: 200, Y: 100}, expected: true},
		{name: "past_right", point: Vector2D{X: 201, Y: 50}, expected: false},
		{name: "above_top", point: Vector2D{X: 100, Y: -1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arena.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name     string
		a        Rect
		b        Rect
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Rect{Center: Vector2D{X: 0, Y: 0}, Width: 10, Height: 10},
			b:        Rect{Center: Vector2D{X: 5, Y: 5}, Width: 10, Height: 10},
			expected: true,
		},
		{
			name:     "contained",
			a:        Rect{Center: Vector2D{X: 0, Y: 0}, Width: 20, Height: 20},
			b:        Rect{Center: Vector2D{X: 1, Y: -1}, Width: 4, Height: 4},
			expected: true,
		},
		{
			name:     "disjoint_horizontal",
			a:        Rect{Center: Vector2D{X: 0, Y: 0}, Width: 10, Height: 10},
			b:        Rect{Center: Vector2D{X: 30, Y: 0}, Width: 10, Height: 10},
			expected: false,
		},
		{
			name:     "touching_edges",
			a:        Rect{Center: Vector2D{X: 0, Y: 0}, Width: 10, Height: 10},
			b:        Rect{Center: Vector2D{X: 10, Y: 0}, Width: 10, Height: 10},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			// Overlap is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRect_OppositeBounds(t *testing.T) {
	arena := NewRectFromEdges(0, 0, 200, 100)

	tests := []struct {
		name      string
		x         float64
		expectedX float64
		y         float64
		expectedY float64
	}{
		{name: "exited_left_and_top", x: -5, expectedX: 200, y: -5, expectedY: 100},
		{name: "exited_right_and_bottom", x: 230, expectedX: 0, y: 140, expectedY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arena.OppositeX(tt.x); got != tt.expectedX {
				t.Errorf("OppositeX(%v) = %v, expected %v", tt.x, got, tt.expectedX)
			}
			if got := arena.OppositeY(tt.y); got != tt.expectedY {
				t.Errorf("OppositeY(%v) = %v, expected %v", tt.y, got, tt.expectedY)
			}
		})
	}
}

func TestLine_ThroughTwoPoints(t *testing.T) {
	tests := []struct {
		name      string
		from      Vector2D
		to        Vector2D
		vertical  bool
		slope     float64
		intercept float64
	}{
		{
			name:      "unit_diagonal",
			from:      Vector2D{X: 0, Y: 0},
			to:        Vector2D{X: 1, Y: 1},
			slope:     1,
			intercept: 0,
		},
		{
			name:      "offset_diagonal",
			from:      Vector2D{X: 2, Y: 3},
			to:        Vector2D{X: 4, Y: 7},
			slope:     2,
			intercept: 1, // slope*x0 - y0 = 4 - 3
		},
		{
			name:     "vertical_travel",
			from:     Vector2D{X: 5, Y: 0},
			to:       Vector2D{X: 5, Y: 9},
			vertical: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := NewLine(tt.from, tt.to)
			if line.Vertical != tt.vertical {
				t.Fatalf("Vertical = %v, expected %v", line.Vertical, tt.vertical)
			}
			if tt.vertical {
				return
			}
			if line.Slope != tt.slope || line.Intercept != tt.intercept {
				t.Errorf("line = {slope %v intercept %v}, expected {slope %v intercept %v}",
					line.Slope, line.Intercept, tt.slope, tt.intercept)
			}
			// Both original points must satisfy y = slope*x - intercept.
			if line.YAt(tt.from.X) != tt.from.Y || line.YAt(tt.to.X) != tt.to.Y {
				t.Errorf("line does not pass through its defining points")
			}
			if line.XAt(tt.to.Y) != tt.to.X {
				t.Errorf("XAt(%v) = %v, expected %v", tt.to.Y, line.XAt(tt.to.Y), tt.to.X)
			}
		})
	}
}
