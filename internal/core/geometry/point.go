package geometry

import "math"

// Point is a 2D point or vector. Methods never modify the receiver.
type Point struct {
	X, Y float64
}

// Forward and Right are the unit axes of the world. Angle 0 looks along
// Forward; every sin/cos conversion in the engine follows this convention.
var (
	Forward = Point{math.Cos(math.Pi / 2), math.Sin(math.Pi / 2)}
	Right   = Point{-math.Sin(math.Pi / 2), -math.Cos(math.Pi / 2)}
)

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Div returns p / s.
func (p Point) Div(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the z component of the 3D cross product of p and o.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Normal returns p scaled to unit length. A zero vector, or one that is
// already unit length within CloseEpsilon, is returned unchanged.
func (p Point) Normal() Point {
	length := p.Length()
	if length == 0 || IsClose(length, 1) {
		return p
	}
	return p.Div(length)
}

// Angle returns the signed angle between p and Forward. The result is
// negative when p leans towards Right.
func (p Point) Angle() float64 {
	n := p.Normal()
	// rounding can push the dot product of two unit vectors past ±1
	angle := math.Acos(clamp(n.Dot(Forward), -1, 1))
	if n.Dot(Right) > 0 {
		return -angle
	}
	return angle
}
