package geometry

import "math"

// IntersectResult describes the outcome of an intersection test. When Hit
// is false the other fields carry no meaning.
type IntersectResult struct {
	Hit      bool
	Point    Point
	Segment  Segment // the segment that was hit
	Distance float64 // from the tested segment's Start to Point
}

// Intersect tests s against other. Parallel and collinear segments never
// hit, and neither do segments whose bounding boxes only touch.
func (s Segment) Intersect(other Segment) IntersectResult {
	if !s.overlaps(other) {
		return IntersectResult{}
	}

	p, ok := s.intersectPoint(other)
	if !ok {
		return IntersectResult{}
	}

	return IntersectResult{
		Hit:      true,
		Point:    p,
		Segment:  other,
		Distance: p.Sub(s.Start).Length(),
	}
}

// IntersectList returns the hit nearest to s.Start among others. The
// first candidate reaching a strict minimum wins ties.
func (s Segment) IntersectList(others []Segment) IntersectResult {
	var best IntersectResult
	bestSq := math.Inf(1)

	for _, other := range others {
		if !s.overlaps(other) {
			continue
		}
		p, ok := s.intersectPoint(other)
		if !ok {
			continue
		}

		d := p.Sub(s.Start)
		sq := d.Dot(d)
		if sq < bestSq {
			bestSq = sq
			best = IntersectResult{
				Hit:      true,
				Point:    p,
				Segment:  other,
				Distance: math.Sqrt(sq),
			}
		}
	}

	return best
}

// overlaps is the strict bounding box test. Boxes sharing only an edge do
// not overlap.
func (s Segment) overlaps(other Segment) bool {
	return other.MinX() < s.MaxX() && other.MaxX() > s.MinX() &&
		other.MinY() < s.MaxY() && other.MaxY() > s.MinY()
}

// intersectPoint solves the 2x2 system for the crossing of the two
// supporting lines and keeps it only when it lies on both segments.
func (s Segment) intersectPoint(other Segment) (Point, bool) {
	a := s.InvDelta()
	b := other.InvDelta()

	det := a.Cross(b)
	if det == 0 {
		return Point{}, false
	}

	across := s.Cross()
	bcross := other.Cross()
	p := Point{
		X: (across*b.X - a.X*bcross) / det,
		Y: (across*b.Y - a.Y*bcross) / det,
	}

	if !s.InBounds(p) || !other.InBounds(p) {
		return Point{}, false
	}
	return p, true
}
