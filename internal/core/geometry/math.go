// Package geometry holds the 2D primitives the raycaster is built on:
// points, infinite lines, wall segments and rays, plus the exact
// segment-segment intersection used for every ray and movement probe.
package geometry

import "math"

// Tolerances used across the package.
const (
	// CloseEpsilon is the default tolerance for IsClose.
	CloseEpsilon = 1.0e-9
	// RangeEpsilon widens bounding boxes when testing intersection points.
	RangeEpsilon = 1.0e-7
	// AngleEpsilon is the tolerance for comparing ray angles.
	AngleEpsilon = 1.0e-6
	// VerticalSlope stands in for the undefined slope of a vertical line.
	VerticalSlope = 1.0e100
)

// Pi2 is a full turn in radians.
const Pi2 = 2 * math.Pi

// IsClose reports whether a and b differ by at most CloseEpsilon.
func IsClose(a, b float64) bool {
	return IsCloseEps(a, b, CloseEpsilon)
}

// IsCloseEps reports whether a and b differ by at most eps.
func IsCloseEps(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// InRange reports whether value lies in [lo, hi] widened by RangeEpsilon.
// Intersection points are reached through floating point algebra and can
// land a hair outside the box of a segment they are on.
func InRange(lo, hi, value float64) bool {
	return lo-RangeEpsilon <= value && value <= hi+RangeEpsilon
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, Pi2)
	if a < 0 {
		a += Pi2
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
