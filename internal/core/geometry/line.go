package geometry

// Line is an unbounded line through Origin. A Slope of ±VerticalSlope
// marks a vertical line.
type Line struct {
	Origin Point
	Slope  float64
}

// IsVertical reports whether l carries the vertical sentinel slope.
func (l Line) IsVertical() bool {
	return l.Slope >= VerticalSlope || l.Slope <= -VerticalSlope
}

// At returns the y coordinate of l at x. It is meaningless for vertical
// lines.
func (l Line) At(x float64) float64 {
	return l.Slope*(x-l.Origin.X) + l.Origin.Y
}

// Intercept returns the point where l and o cross. ok is false when the
// lines are parallel, including when both are vertical.
func (l Line) Intercept(o Line) (p Point, ok bool) {
	switch {
	case l.IsVertical() && o.IsVertical():
		return Point{}, false
	case l.IsVertical():
		return Point{l.Origin.X, o.At(l.Origin.X)}, true
	case o.IsVertical():
		return Point{o.Origin.X, l.At(o.Origin.X)}, true
	case l.Slope == o.Slope:
		return Point{}, false
	}

	// point-slope forms solved for x
	x := -(-o.Origin.Y + l.Origin.Y + o.Slope*o.Origin.X - l.Slope*l.Origin.X) / (l.Slope - o.Slope)
	return Point{x, l.At(x)}, true
}
