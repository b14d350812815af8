package game

import (
	"math"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/world"
)

const (
	// DefaultSnap is the grid step placed endpoints snap to.
	DefaultSnap = 0.125

	// DefaultPickRadius is how close, in pixels, the cursor must be to a
	// wall to pick it.
	DefaultPickRadius = 10.0

	pickArms = 8
)

// Editor changes the world's walls from the map layer. Dragging the left
// button over open floor draws a wall, the right button removes the wall
// under the cursor and F flips it. Edits land in Game.Update, before the
// frame's rays are cast.
type Editor struct {
	Active     bool
	Snap       float64
	PickRadius float64

	cursor  geometry.Point
	onMap   bool
	hover   geometry.IntersectResult
	drawing bool
	draft   geometry.Segment

	// button state on the previous tick
	leftDown  bool
	rightDown bool
}

// NewEditor returns an inactive editor with the default snap and pick
// radius.
func NewEditor() *Editor {
	return &Editor{Snap: DefaultSnap, PickRadius: DefaultPickRadius}
}

// Toggle switches edit mode and drops any wall in progress.
func (e *Editor) Toggle() {
	e.Active = !e.Active
	e.cancel()
}

func (e *Editor) cancel() {
	e.drawing = false
	e.hover = geometry.IntersectResult{}
}

// Cursor returns the snapped cursor position, if the cursor is over the map.
func (e *Editor) Cursor() (geometry.Point, bool) {
	return e.snap(e.cursor), e.onMap
}

// Hovered returns the wall under the cursor.
func (e *Editor) Hovered() (geometry.Segment, bool) {
	return e.hover.Segment, e.hover.Hit
}

// Draft returns the wall being drawn.
func (e *Editor) Draft() (geometry.Segment, bool) {
	return e.draft, e.drawing
}

// Update applies one tick of input to w. view maps the map layer, whose
// top left corner sits at (originX, originY) on screen. It reports whether
// the wall list changed.
func (e *Editor) Update(input render.InputManager, view MapView, originX, originY float64, w *world.World) bool {
	left := input.IsMouseButtonPressed(render.MouseButtonLeft)
	right := input.IsMouseButtonPressed(render.MouseButtonRight)
	leftClick := left && !e.leftDown
	rightClick := right && !e.rightDown
	e.leftDown, e.rightDown = left, right

	if !e.Active || w == nil {
		e.cancel()
		return false
	}

	mx, my := input.GetCursorPosition()
	e.cursor, e.onMap = view.ToWorld(float64(mx)-originX, float64(my)-originY)

	e.hover = geometry.IntersectResult{}
	if e.onMap && !e.drawing {
		e.hover = e.pick(w.Walls(), view.Scale())
	}

	switch {
	case e.drawing:
		if e.onMap {
			e.draft.End = e.snap(e.cursor)
		}
		if left {
			return false
		}
		e.drawing = false
		if e.draft.Start == e.draft.End {
			return false
		}
		w.Add(e.draft)
		return true

	case leftClick && e.onMap && !e.hover.Hit:
		p := e.snap(e.cursor)
		e.draft = geometry.Segment{Start: p, End: p}
		e.drawing = true

	case rightClick && e.hover.Hit:
		removed := removeWall(w, e.hover.Segment)
		e.hover = geometry.IntersectResult{}
		return removed

	case input.IsKeyJustPressed(render.KeyF) && e.hover.Hit:
		flipped, ok := flipWall(w, e.hover.Segment)
		e.hover.Segment = flipped
		return ok
	}
	return false
}

func (e *Editor) snap(p geometry.Point) geometry.Point {
	if e.Snap <= 0 {
		return p
	}
	return geometry.Point{
		X: math.Round(p.X/e.Snap) * e.Snap,
		Y: math.Round(p.Y/e.Snap) * e.Snap,
	}
}

// pick casts a star of short arms out of the cursor and keeps the nearest
// wall any of them crosses.
func (e *Editor) pick(walls []geometry.Segment, scale float64) geometry.IntersectResult {
	if scale <= 0 {
		return geometry.IntersectResult{}
	}
	reach := e.PickRadius / scale

	var best geometry.IntersectResult
	for i := 0; i < pickArms; i++ {
		arm := geometry.Ray{Start: e.cursor, Angle: float64(i) * geometry.Pi2 / pickArms}
		hit := arm.ToSegmentLength(reach).IntersectList(walls)
		if hit.Hit && (!best.Hit || hit.Distance < best.Distance) {
			best = hit
		}
	}
	return best
}

func wallIndex(walls []geometry.Segment, target geometry.Segment) int {
	for i, s := range walls {
		if s.Equal(target) {
			return i
		}
	}
	return -1
}

func removeWall(w *world.World, target geometry.Segment) bool {
	walls := w.Walls()
	i := wallIndex(walls, target)
	if i < 0 {
		return false
	}
	kept := make([]geometry.Segment, 0, len(walls)-1)
	kept = append(kept, walls[:i]...)
	kept = append(kept, walls[i+1:]...)
	w.Replace(kept)
	return true
}

// flipWall swaps the endpoints of target, turning its surface normal
// around. Wall order is kept.
func flipWall(w *world.World, target geometry.Segment) (geometry.Segment, bool) {
	walls := w.Walls()
	i := wallIndex(walls, target)
	if i < 0 {
		return target, false
	}
	flipped := geometry.Segment{Start: target.End, End: target.Start}
	edited := append([]geometry.Segment(nil), walls...)
	edited[i] = flipped
	w.Replace(edited)
	return flipped, true
}
