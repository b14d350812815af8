package game

import (
	"math"
	"testing"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/world"
)

// 4x4 world in a 400x400 view: 100 pixels per unit, y up.
func editorView() MapView {
	return NewMapView(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 4}, 0, 400, 400)
}

func seg(x0, y0, x1, y1 float64) geometry.Segment {
	return geometry.Segment{Start: geometry.Point{X: x0, Y: y0}, End: geometry.Point{X: x1, Y: y1}}
}

func newActiveEditor() *Editor {
	e := NewEditor()
	e.Toggle()
	return e
}

func TestEditorDrawsWall(t *testing.T) {
	w := world.New(nil)
	e := newActiveEditor()
	input := newFakeInput()
	view := editorView()

	// press near (1, 1); the start snaps onto the grid
	input.moveCursor(101, 299)
	input.buttons[render.MouseButtonLeft] = true
	if e.Update(input, view, 0, 0, w) {
		t.Fatal("Expected no change while the button is held")
	}
	if _, ok := e.Draft(); !ok {
		t.Fatal("Expected a wall in progress")
	}

	input.moveCursor(250, 300)
	e.Update(input, view, 0, 0, w)
	if draft, _ := e.Draft(); draft != seg(1, 1, 2.5, 1) {
		t.Errorf("Expected draft (1,1)-(2.5,1), got %v", draft)
	}

	input.release()
	input.moveCursor(250, 300)
	if !e.Update(input, view, 0, 0, w) {
		t.Fatal("Expected the wall to be added on release")
	}
	if w.Len() != 1 || w.Walls()[0] != seg(1, 1, 2.5, 1) {
		t.Errorf("Expected one wall (1,1)-(2.5,1), got %v", w.Walls())
	}
	if _, ok := e.Draft(); ok {
		t.Error("Expected the draft to be finished")
	}
}

func TestEditorDropsZeroLengthWall(t *testing.T) {
	w := world.New(nil)
	e := newActiveEditor()
	input := newFakeInput()

	input.moveCursor(200, 200)
	input.buttons[render.MouseButtonLeft] = true
	e.Update(input, editorView(), 0, 0, w)

	delete(input.buttons, render.MouseButtonLeft)
	if e.Update(input, editorView(), 0, 0, w) {
		t.Error("Expected a click without a drag to add nothing")
	}
	if w.Len() != 0 {
		t.Errorf("Expected an empty world, got %v", w.Walls())
	}
}

func TestEditorAppliesOffset(t *testing.T) {
	w := world.New(nil)
	e := newActiveEditor()
	input := newFakeInput()

	// map layer drawn 100 pixels to the right
	input.moveCursor(200, 300)
	input.buttons[render.MouseButtonLeft] = true
	e.Update(input, editorView(), 100, 0, w)

	if draft, _ := e.Draft(); draft.Start != (geometry.Point{X: 1, Y: 1}) {
		t.Errorf("Expected the wall to start at (1, 1), got %v", draft.Start)
	}
}

func TestEditorHover(t *testing.T) {
	w := world.New([]geometry.Segment{seg(1, 2, 3, 2), seg(0.5, 0.5, 0.5, 3.5)})
	e := newActiveEditor()
	input := newFakeInput()

	// five pixels above the horizontal wall
	input.moveCursor(200, 195)
	e.Update(input, editorView(), 0, 0, w)
	if hovered, ok := e.Hovered(); !ok || hovered != seg(1, 2, 3, 2) {
		t.Errorf("Expected the horizontal wall under the cursor, got %v (%v)", hovered, ok)
	}

	// far from either wall
	input.moveCursor(250, 100)
	e.Update(input, editorView(), 0, 0, w)
	if _, ok := e.Hovered(); ok {
		t.Error("Expected nothing under the cursor")
	}
}

func TestEditorClickOnWallDoesNotDraw(t *testing.T) {
	w := world.New([]geometry.Segment{seg(1, 2, 3, 2)})
	e := newActiveEditor()
	input := newFakeInput()

	input.moveCursor(200, 195)
	input.buttons[render.MouseButtonLeft] = true
	e.Update(input, editorView(), 0, 0, w)

	if _, ok := e.Draft(); ok {
		t.Error("Expected no wall to start on top of an existing one")
	}
}

func TestEditorRemovesWall(t *testing.T) {
	w := world.New([]geometry.Segment{seg(1, 2, 3, 2), seg(0.5, 0.5, 0.5, 3.5)})
	e := newActiveEditor()
	input := newFakeInput()

	input.moveCursor(200, 195)
	input.buttons[render.MouseButtonRight] = true
	if !e.Update(input, editorView(), 0, 0, w) {
		t.Fatal("Expected the wall to be removed")
	}
	if w.Len() != 1 || w.Walls()[0] != seg(0.5, 0.5, 0.5, 3.5) {
		t.Errorf("Expected only the vertical wall to remain, got %v", w.Walls())
	}

	// holding the button does not remove again
	input.moveCursor(55, 200)
	if e.Update(input, editorView(), 0, 0, w) {
		t.Error("Expected a held button to remove nothing more")
	}
	if w.Len() != 1 {
		t.Errorf("Expected one wall, got %d", w.Len())
	}
}

func TestEditorFlipsWall(t *testing.T) {
	w := world.New([]geometry.Segment{seg(0.5, 0.5, 0.5, 3.5), seg(1, 2, 3, 2)})
	e := newActiveEditor()
	input := newFakeInput()
	before := w.Walls()[1].SurfaceNormal()

	input.moveCursor(200, 195)
	input.just[render.KeyF] = true
	if !e.Update(input, editorView(), 0, 0, w) {
		t.Fatal("Expected the wall to be flipped")
	}

	walls := w.Walls()
	if len(walls) != 2 || walls[1] != seg(3, 2, 1, 2) {
		t.Fatalf("Expected the second wall flipped in place, got %v", walls)
	}
	after := walls[1].SurfaceNormal()
	if !geometry.IsClose(after.X, -before.X) || !geometry.IsClose(after.Y, -before.Y) {
		t.Errorf("Expected the surface normal to turn around, got %v from %v", after, before)
	}
	if hovered, _ := e.Hovered(); hovered != walls[1] {
		t.Errorf("Expected the flipped wall to stay hovered, got %v", hovered)
	}
}

func TestEditorInactive(t *testing.T) {
	w := world.New([]geometry.Segment{seg(1, 2, 3, 2)})
	e := NewEditor()
	input := newFakeInput()

	input.moveCursor(200, 195)
	input.buttons[render.MouseButtonRight] = true
	input.just[render.KeyF] = true
	if e.Update(input, editorView(), 0, 0, w) {
		t.Error("Expected an inactive editor to leave the world alone")
	}
	if w.Walls()[0] != seg(1, 2, 3, 2) {
		t.Errorf("Expected the wall unchanged, got %v", w.Walls()[0])
	}
}

func TestEditorOffMap(t *testing.T) {
	w := world.New(nil)
	e := newActiveEditor()
	input := newFakeInput()

	input.moveCursor(200, 200)
	input.buttons[render.MouseButtonLeft] = true
	e.Update(input, MapView{}, 0, 0, w)

	if _, ok := e.Draft(); ok {
		t.Error("Expected no drawing without a visible map")
	}
	if _, ok := e.Cursor(); ok {
		t.Error("Expected the cursor to be off the map")
	}
}

func TestGameEditModeAddsWall(t *testing.T) {
	input := newFakeInput()
	g, _ := newTestGame(t, input)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	g.Draw(&fakeImage{w: 800, h: 600})
	walls := g.World.Len()

	toScreen := func(p geometry.Point) (int, int) {
		x, y, ok := g.View.ToScreen(p)
		if !ok {
			t.Fatalf("Expected %v on the map", p)
		}
		return int(math.Round(float64(x) + g.MapX)), int(math.Round(float64(y) + g.MapY))
	}

	input.just[render.KeyE] = true
	input.buttons[render.MouseButtonLeft] = true
	input.moveCursor(toScreen(geometry.Point{X: 2, Y: 1.25}))
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !g.Editor.Active {
		t.Fatal("Expected E to enter edit mode")
	}

	delete(input.just, render.KeyE)
	input.moveCursor(toScreen(geometry.Point{X: 2.5, Y: 1.25}))
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	delete(input.buttons, render.MouseButtonLeft)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if g.World.Len() != walls+1 {
		t.Fatalf("Expected %d walls, got %d", walls+1, g.World.Len())
	}
	if last := g.World.Walls()[walls]; last != seg(2, 1.25, 2.5, 1.25) {
		t.Errorf("Expected the new wall (2,1.25)-(2.5,1.25), got %v", last)
	}
	if len(g.Hits) != g.Config.Raycast.Rays {
		t.Errorf("Expected a full frame cast after the edit, got %d hits", len(g.Hits))
	}
}

func TestDrawEditMode(t *testing.T) {
	g, r := newTestGame(t, newFakeInput())
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	screen := &fakeImage{w: 800, h: 600}

	g.Draw(screen)
	lines := r.lines

	g.Editor.Toggle()
	r.lines, r.texts = 0, nil
	g.Draw(screen)

	if r.lines <= lines {
		t.Errorf("Expected surface normal arrows on top of %d lines, got %d", lines, r.lines)
	}
	if len(r.texts) != 3 {
		t.Errorf("Expected an edit help line, got %d status lines", len(r.texts))
	}
}
