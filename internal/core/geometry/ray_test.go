package geometry

import (
	"math"
	"testing"
)

func TestRayDistantPoint(t *testing.T) {
	r := Ray{Start: Point{1, 1}, Angle: 0}
	if got := r.DistantPoint(); got != (Point{1, 101}) {
		t.Errorf("Expected (1, 101), got %v", got)
	}

	side := Ray{Start: Point{0, 0}, Angle: math.Pi / 2}.DistantPoint()
	if !IsClose(side.X, DistantPointLength) || !IsCloseEps(side.Y, 0, 1e-12) {
		t.Errorf("Expected (%v, 0), got %v", DistantPointLength, side)
	}
}

func TestRayToSegment(t *testing.T) {
	r := Ray{Start: Point{2, 3}, Angle: 1.2}
	s := r.ToSegment()
	if s.Start != r.Start {
		t.Errorf("Expected segment to start at %v, got %v", r.Start, s.Start)
	}
	if !IsCloseEps(s.Length(), DistantPointLength, 1e-9) {
		t.Errorf("Expected length %v, got %v", DistantPointLength, s.Length())
	}

	short := r.ToSegmentLength(0.5)
	if !IsClose(short.Length(), 0.5) {
		t.Errorf("Expected length 0.5, got %v", short.Length())
	}
}

func TestRayToLine(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"forward", 0, VerticalSlope},
		{"full turn", Pi2, VerticalSlope},
		{"backward", math.Pi, -VerticalSlope},
		{"negative backward", -math.Pi, -VerticalSlope},
		{"diagonal", math.Pi / 4, 1},
		{"sideways", math.Pi / 2, 0},
		{"negative diagonal", -math.Pi / 4, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Ray{Start: Point{4, 5}, Angle: tt.angle}.ToLine()
			if l.Origin != (Point{4, 5}) {
				t.Errorf("Expected origin (4, 5), got %v", l.Origin)
			}
			if !IsClose(l.Slope, tt.want) {
				t.Errorf("Expected slope %v, got %v", tt.want, l.Slope)
			}
		})
	}
}

func TestRayLineMatchesSegmentSlope(t *testing.T) {
	for _, angle := range []float64{0.2, 1.1, 2.7, -0.6, -2.2} {
		r := Ray{Start: Point{0, 0}, Angle: angle}
		want := r.ToSegment().Slope()
		if got := r.ToLine().Slope; !IsCloseEps(got, want, 1e-9) {
			t.Errorf("Angle %v: expected slope %v, got %v", angle, want, got)
		}
	}
}

func TestRayEqual(t *testing.T) {
	a := Ray{Start: Point{1, 2}, Angle: 0.5}
	if !a.Equal(Ray{Start: Point{1, 2}, Angle: 0.5 + AngleEpsilon/2}) {
		t.Error("Expected rays within angle tolerance to be equal")
	}
	if a.Equal(Ray{Start: Point{1, 2}, Angle: 0.5 + 2*AngleEpsilon}) {
		t.Error("Expected rays beyond angle tolerance to differ")
	}
	if a.Equal(Ray{Start: Point{1, 2.0000001}, Angle: 0.5}) {
		t.Error("Expected rays with different starts to differ")
	}
}

func TestRayEqualWrapsAround(t *testing.T) {
	start := Point{1, 2}
	tests := []struct {
		a, b float64
	}{
		{4, 4 - Pi2},
		{-4, -4 + Pi2},
		{Pi2 - 0.1, -0.1},
		{0, Pi2},
		{AngleEpsilon / 2, Pi2 - AngleEpsilon/2},
	}
	for _, tt := range tests {
		if !(Ray{Start: start, Angle: tt.a}).Equal(Ray{Start: start, Angle: tt.b}) {
			t.Errorf("Expected angles %v and %v to be equal", tt.a, tt.b)
		}
	}

	if (Ray{Start: start, Angle: 0}).Equal(Ray{Start: start, Angle: math.Pi}) {
		t.Error("Expected opposite rays to differ")
	}
}
