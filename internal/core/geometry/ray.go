package geometry

import "math"

// DistantPointLength is how far a ray reaches when it is turned into a
// segment for intersection tests.
const DistantPointLength = 100.0

// Ray is a half line leaving Start at Angle radians from Forward.
type Ray struct {
	Start Point
	Angle float64
}

// Direction returns the unit vector the ray travels along.
func (r Ray) Direction() Point {
	return Point{math.Sin(r.Angle), math.Cos(r.Angle)}
}

// DistantPoint returns the point DistantPointLength along the ray.
func (r Ray) DistantPoint() Point {
	return r.pointAt(DistantPointLength)
}

func (r Ray) pointAt(length float64) Point {
	return Point{
		X: r.Start.X + math.Sin(r.Angle)*length,
		Y: r.Start.Y + math.Cos(r.Angle)*length,
	}
}

// ToSegment bounds the ray at DistantPoint.
func (r Ray) ToSegment() Segment {
	return Segment{Start: r.Start, End: r.DistantPoint()}
}

// ToSegmentLength bounds the ray at the given length.
func (r Ray) ToSegmentLength(length float64) Segment {
	return Segment{Start: r.Start, End: r.pointAt(length)}
}

// ToLine returns the infinite line along the ray. Angles at 0 and π are
// vertical and get the sentinel slope with a sign telling them apart.
func (r Ray) ToLine() Line {
	angle := NormalizeAngle(r.Angle)
	switch {
	case IsClose(angle, 0) || IsClose(angle, Pi2):
		return Line{Origin: r.Start, Slope: VerticalSlope}
	case IsClose(angle, math.Pi):
		return Line{Origin: r.Start, Slope: -VerticalSlope}
	}
	return Line{Origin: r.Start, Slope: math.Cos(angle) / math.Sin(angle)}
}

// Equal compares starts exactly and angles within AngleEpsilon. Angles a
// whole turn apart are equal.
func (r Ray) Equal(o Ray) bool {
	d := NormalizeAngle(r.Angle - o.Angle)
	return r.Start == o.Start && min(d, Pi2-d) <= AngleEpsilon
}
