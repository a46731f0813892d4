// pkg/physics/rect.go
package physics

// Rect represents an axis-aligned rectangular area centered on a point.
// Arena bounds and sprite bounding boxes both use this shape.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// NewRectFromEdges builds a Rect from top-left corner and dimensions,
// the form in which host surfaces report their bounds.
func NewRectFromEdges(left, top, width, height float64) Rect {
	return Rect{
		Center: Vector2D{X: left + width/2, Y: top + height/2},
		Width:  width,
		Height: height,
	}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Center.X - r.Width/2
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Center.X + r.Width/2
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Center.Y - r.Height/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Center.Y + r.Height/2
}

// ContainsX reports whether x lies on or inside the horizontal bounds.
func (r Rect) ContainsX(x float64) bool {
	return x >= r.Left() && x <= r.Right()
}

// ContainsY reports whether y lies on or inside the vertical bounds.
func (r Rect) ContainsY(y float64) bool {
	return y >= r.Top() && y <= r.Bottom()
}

// Contains reports whether the point lies on or inside the rectangle.
func (r Rect) Contains(point Vector2D) bool {
	return r.ContainsX(point.X) && r.ContainsY(point.Y)
}

// Intersects reports whether two rectangles overlap. Touching edges do
// not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Left() >= r.Right() ||
		other.Right() <= r.Left() ||
		other.Top() >= r.Bottom() ||
		other.Bottom() <= r.Top())
}

// OppositeX returns the horizontal bound opposite to the edge the
// coordinate has crossed. A point that left past the left edge re-enters
// at the right bound and vice versa.
func (r Rect) OppositeX(x float64) float64 {
	if x < r.Left() {
		return r.Right()
	}
	return r.Left()
}

// OppositeY returns the vertical bound opposite to the edge the
// coordinate has crossed.
func (r Rect) OppositeY(y float64) float64 {
	if y < r.Top() {
		return r.Bottom()
	}
	return r.Top()
}
