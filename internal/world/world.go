// Package world holds the wall geometry of a loaded level.
package world

import "chosenoffset.com/wallcaster/internal/core/geometry"

// World owns the ordered wall list of a level. Insertion order is wall
// identity order and carries no geometric meaning.
//
// A World is shared by reference with the camera and every raycast worker.
// It must not be mutated while any worker is computing; callers quiesce
// the workers (or wait for a frame's Cast to return) before calling Add or
// Replace.
type World struct {
	walls []geometry.Segment
}

// New creates a world holding a copy of walls.
func New(walls []geometry.Segment) *World {
	w := &World{}
	w.Replace(walls)
	return w
}

// Walls returns the wall list. The slice is shared; treat it as read-only.
func (w *World) Walls() []geometry.Segment {
	return w.walls
}

// Len returns the number of walls.
func (w *World) Len() int {
	return len(w.walls)
}

// Add appends walls in order.
func (w *World) Add(walls ...geometry.Segment) {
	w.walls = append(w.walls, walls...)
}

// Replace swaps in a copy of walls, as done on a level reload.
func (w *World) Replace(walls []geometry.Segment) {
	w.walls = append([]geometry.Segment(nil), walls...)
}

// Bounds returns the smallest box containing every wall endpoint. The box
// always includes the unit square at the origin so an empty world still
// has a usable extent.
func (w *World) Bounds() (minimum, maximum geometry.Point) {
	minimum = geometry.Point{X: 0, Y: 0}
	maximum = geometry.Point{X: 1, Y: 1}

	for _, s := range w.walls {
		minimum.X = min(minimum.X, s.MinX())
		minimum.Y = min(minimum.Y, s.MinY())
		maximum.X = max(maximum.X, s.MaxX())
		maximum.Y = max(maximum.Y, s.MaxY())
	}
	return minimum, maximum
}
