// pkg/physics/line.go
package physics

// Line is the straight trajectory through two points, kept in the
// slope/intercept form y = slope*x - intercept with
// intercept = slope*x0 - y0. The sign convention is unusual but matches
// the boundary re-entry math; changing it would change where steep
// trajectories re-enter the arena.
type Line struct {
	Slope     float64
	Intercept float64
	Vertical  bool
}

// NewLine builds the trajectory line from a previous point to an
// intended next point. Vertical travel (no x displacement) carries no
// slope; callers must branch on Vertical before evaluating the line.
func NewLine(from, to Vector2D) Line {
	if to.X == from.X {
		return Line{Vertical: true}
	}
	slope := (to.Y - from.Y) / (to.X - from.X)
	return Line{
		Slope:     slope,
		Intercept: slope*from.X - from.Y,
	}
}

// YAt evaluates the line at the given x.
func (l Line) YAt(x float64) float64 {
	return l.Slope*x - l.Intercept
}

// XAt solves the line for the given y. Undefined for horizontal lines
// (slope 0); callers only reach it after a vertical bound violation,
// which a horizontal trajectory cannot produce.
func (l Line) XAt(y float64) float64 {
	return (y + l.Intercept) / l.Slope
}
