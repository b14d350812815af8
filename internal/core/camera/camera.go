// Package camera generates the per-frame ray fan for a viewpoint and
// resolves its movement against the world's walls.
package camera

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/world"
)

// Movement probe defaults.
const (
	DefaultProbeCount  = 6
	DefaultProbeSpread = math.Pi / 2
	DefaultProbeMargin = 0.125

	// MoveEpsilon is the smallest movement that is applied. Anything
	// shorter is dropped to avoid jitter against walls.
	MoveEpsilon = 1.0e-4
)

// ErrInvalidViewingAngle is returned for a field of view outside (0, π).
var ErrInvalidViewingAngle = errors.New("camera: viewing angle must be in (0, π)")

// MoveProbes describes the fan of short rays used to sweep a movement.
type MoveProbes struct {
	Count  int     // number of probes
	Spread float64 // total angle covered, centred on the movement
	Margin float64 // how far past the requested distance each probe reaches
}

// DefaultMoveProbes returns the standard probe fan.
func DefaultMoveProbes() MoveProbes {
	return MoveProbes{
		Count:  DefaultProbeCount,
		Spread: DefaultProbeSpread,
		Margin: DefaultProbeMargin,
	}
}

// Camera is a viewpoint in the world. It is owned by the frame loop and is
// not safe for concurrent use.
type Camera struct {
	Location         geometry.Point
	Direction        float64 // radians, 0 is geometry.Forward
	ViewingAngle     float64 // full field of view in radians
	PlanarProjection bool
	Probes           MoveProbes
}

// New creates a camera using planar projection and the default probes.
func New(location geometry.Point, direction, viewingAngle float64) (*Camera, error) {
	if err := validateViewingAngle(viewingAngle); err != nil {
		return nil, err
	}
	return &Camera{
		Location:         location,
		Direction:        direction,
		ViewingAngle:     viewingAngle,
		PlanarProjection: true,
		Probes:           DefaultMoveProbes(),
	}, nil
}

func validateViewingAngle(angle float64) error {
	if !(angle > 0 && angle < math.Pi) {
		return fmt.Errorf("%w: got %v", ErrInvalidViewingAngle, angle)
	}
	return nil
}

// ForwardVector returns the unit vector the camera is facing.
func (c *Camera) ForwardVector() geometry.Point {
	return geometry.Ray{Angle: c.Direction}.Direction()
}

// Rotate turns the camera by angle radians.
func (c *Camera) Rotate(angle float64) {
	c.Direction = math.Mod(c.Direction+angle, geometry.Pi2)
}

// Rays returns count rays spanning the field of view, left edge first.
//
// With planar projection the rays pass through evenly spaced points on a
// flat viewing plane one unit ahead of the camera, which keeps wall
// columns straight. Otherwise the field of view is divided into equal
// angles, which bends straight walls at wide fields of view.
func (c *Camera) Rays(count int) ([]geometry.Ray, error) {
	if count <= 0 {
		return nil, nil
	}

	startAngle := c.Direction - c.ViewingAngle/2
	endAngle := startAngle + c.ViewingAngle
	rays := make([]geometry.Ray, 0, count)

	if !c.PlanarProjection {
		slice := c.ViewingAngle / float64(count)
		for i := 0; i < count; i++ {
			rays = append(rays, geometry.Ray{Start: c.Location, Angle: startAngle + slice*float64(i)})
		}
		return rays, nil
	}

	planeStart := c.Location.Add(geometry.Ray{Angle: startAngle}.Direction())
	planeEnd := c.Location.Add(geometry.Ray{Angle: endAngle}.Direction())
	delta := planeEnd.Sub(planeStart).Div(float64(count))

	for i := 0; i < count; i++ {
		planePoint := planeStart.Add(delta.Scale(float64(i)))
		ray, err := geometry.Segment{Start: c.Location, End: planePoint}.ToRay()
		if err != nil {
			return nil, fmt.Errorf("ray %d of %d: %w", i, count, err)
		}
		rays = append(rays, ray)
	}
	return rays, nil
}

// RaySegments returns the ray fan as segments ready for a raycast batch.
func (c *Camera) RaySegments(count int) ([]geometry.Segment, error) {
	rays, err := c.Rays(count)
	if err != nil {
		return nil, err
	}
	segments := make([]geometry.Segment, len(rays))
	for i, r := range rays {
		segments[i] = r.ToSegment()
	}
	return segments, nil
}

// MoveRays returns the probe fan for a movement of distance along
// Direction+angle. Each probe reaches Margin past the requested distance.
func (c *Camera) MoveRays(angle, distance float64) []geometry.Segment {
	probes := c.moveProbes()
	slice := probes.Spread / float64(probes.Count)
	start := c.Direction + angle - probes.Spread/2
	segments := make([]geometry.Segment, 0, probes.Count)

	for i := 0; i < probes.Count; i++ {
		r := geometry.Ray{Start: c.Location, Angle: start + slice*float64(i)}
		segments = append(segments, r.ToSegmentLength(distance+probes.Margin))
	}
	return segments
}

// TryMove moves the camera up to distance along Direction+angle, stopping
// short of any wall the probe fan or the straight movement line finds. It
// returns the distance actually travelled and whether the camera moved.
func (c *Camera) TryMove(angle, distance float64, w *world.World) (float64, bool) {
	if distance <= 0 {
		return 0, false
	}

	heading := geometry.Ray{Angle: c.Direction + angle}.Direction()
	safe := distance

	var walls []geometry.Segment
	if w != nil {
		walls = w.Walls()
	}

	// an odd fan leaves the movement line itself unswept
	sweep := c.MoveRays(angle, distance)
	centre := geometry.Ray{Start: c.Location, Angle: c.Direction + angle}
	sweep = append(sweep, centre.ToSegmentLength(distance+c.moveProbes().Margin))

	for _, s := range sweep {
		hit := s.IntersectList(walls)
		if !hit.Hit {
			continue
		}

		// how far along the movement the wall sits, less the body margin
		projected := hit.Point.Sub(c.Location).Dot(heading) - c.moveProbes().Margin
		if projected <= 0 {
			safe = 0
			break
		}
		safe = min(safe, projected)
	}

	if safe < MoveEpsilon {
		return 0, false
	}

	c.Location = c.Location.Add(heading.Scale(safe))
	return safe, true
}

// moveProbes falls back to the defaults for a zero-value Probes.
func (c *Camera) moveProbes() MoveProbes {
	if c.Probes.Count < 1 {
		return DefaultMoveProbes()
	}
	return c.Probes
}
