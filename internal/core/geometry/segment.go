package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateSegment is returned when a direction is requested from a
// segment whose endpoints coincide.
var ErrDegenerateSegment = errors.New("geometry: segment has no direction (start == end)")

// Segment is a bounded wall edge between Start and End.
type Segment struct {
	Start, End Point
}

func (s Segment) MinX() float64 { return math.Min(s.Start.X, s.End.X) }
func (s Segment) MaxX() float64 { return math.Max(s.Start.X, s.End.X) }
func (s Segment) MinY() float64 { return math.Min(s.Start.Y, s.End.Y) }
func (s Segment) MaxY() float64 { return math.Max(s.Start.Y, s.End.Y) }

// Delta returns End - Start.
func (s Segment) Delta() Point {
	return s.End.Sub(s.Start)
}

// InvDelta returns Start - End.
func (s Segment) InvDelta() Point {
	return s.Start.Sub(s.End)
}

// Cross returns Start × End.
func (s Segment) Cross() float64 {
	return s.Start.Cross(s.End)
}

func (s Segment) Length() float64 {
	return s.Delta().Length()
}

// Angle returns the angle of the Start to End direction, measured the same
// way as Point.Angle.
func (s Segment) Angle() float64 {
	return s.Delta().Angle()
}

// Normal returns the unit direction from Start to End.
func (s Segment) Normal() Point {
	return s.Delta().Normal()
}

// SurfaceNormal returns the unit vector perpendicular to the segment,
// rotated a quarter turn clockwise from its direction.
func (s Segment) SurfaceNormal() Point {
	n := s.Normal()
	return Point{n.Y, -n.X}
}

// Slope returns dy/dx, or VerticalSlope when the segment is vertical.
func (s Segment) Slope() float64 {
	if s.Start.X == s.End.X {
		return VerticalSlope
	}
	return (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
}

// Line returns the infinite line through the segment.
func (s Segment) Line() (Line, error) {
	if s.Start == s.End {
		return Line{}, ErrDegenerateSegment
	}
	return Line{Origin: s.Start, Slope: s.Slope()}, nil
}

// ToRay returns the ray leaving Start in the direction of End.
func (s Segment) ToRay() (Ray, error) {
	if s.Start == s.End {
		return Ray{}, ErrDegenerateSegment
	}
	return Ray{Start: s.Start, Angle: s.Angle()}, nil
}

// InBounds reports whether p lies inside the segment's bounding box,
// widened by RangeEpsilon.
func (s Segment) InBounds(p Point) bool {
	return InRange(s.MinX(), s.MaxX(), p.X) && InRange(s.MinY(), s.MaxY(), p.Y)
}

// OnSegment reports whether p lies on the segment.
func (s Segment) OnSegment(p Point) bool {
	if p == s.Start {
		return true
	}
	probe := Segment{Start: s.Start, End: p}
	return IsClose(probe.Slope(), s.Slope()) && s.InBounds(p)
}

// Equal reports whether both endpoints match exactly, in order.
func (s Segment) Equal(o Segment) bool {
	return s.Start == o.Start && s.End == o.End
}
