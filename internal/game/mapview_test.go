package game

import (
	"testing"

	"chosenoffset.com/wallcaster/internal/core/geometry"
)

func TestMapViewProjection(t *testing.T) {
	// 4x2 world with no padding into a 400x400 area: scale 100, centred
	// vertically with a 100px band above and below.
	v := NewMapView(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 2}, 0, 400, 400)

	if v.Scale() != 100 {
		t.Fatalf("Expected scale 100, got %v", v.Scale())
	}

	tests := []struct {
		name   string
		p      geometry.Point
		wx, wy float32
	}{
		{"lower left", geometry.Point{X: 0, Y: 0}, 0, 300},
		{"upper left", geometry.Point{X: 0, Y: 2}, 0, 100},
		{"upper right", geometry.Point{X: 4, Y: 2}, 400, 100},
		{"centre", geometry.Point{X: 2, Y: 1}, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := v.ToScreen(tt.p)
			if !ok {
				t.Fatal("Expected point to be visible")
			}
			if x != tt.wx || y != tt.wy {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wx, tt.wy, x, y)
			}
		})
	}
}

func TestMapViewPadding(t *testing.T) {
	v := NewMapView(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 2}, 1, 400, 400)

	if v.Min != (geometry.Point{X: -1, Y: -1}) || v.Max != (geometry.Point{X: 3, Y: 3}) {
		t.Errorf("Expected padded bounds (-1,-1)-(3,3), got %v-%v", v.Min, v.Max)
	}
	if v.Scale() != 100 {
		t.Errorf("Expected scale 100, got %v", v.Scale())
	}

	if _, _, ok := v.ToScreen(geometry.Point{X: -0.5, Y: 2.5}); !ok {
		t.Error("Expected point in the padding to be visible")
	}
	if _, _, ok := v.ToScreen(geometry.Point{X: 3.5, Y: 0}); ok {
		t.Error("Expected point past the padding to be hidden")
	}
	if _, _, ok := v.ToScreen(geometry.Point{X: 0, Y: -2}); ok {
		t.Error("Expected point below the padding to be hidden")
	}
}

func TestMapViewDegenerate(t *testing.T) {
	v := NewMapView(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 1, Y: 1}, 0, 100, 100)
	if v.Scale() != 0 {
		t.Errorf("Expected zero scale for an empty box, got %v", v.Scale())
	}
	if _, ok := v.ToWorld(50, 50); ok {
		t.Error("Expected no world point for an empty view")
	}
}

func TestMapViewToWorld(t *testing.T) {
	v := NewMapView(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 2}, 0, 400, 400)

	for _, p := range []geometry.Point{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 2, Y: 1}, {X: 0.25, Y: 1.75}} {
		x, y, ok := v.ToScreen(p)
		if !ok {
			t.Fatalf("Expected %v to be visible", p)
		}
		got, ok := v.ToWorld(float64(x), float64(y))
		if !ok {
			t.Fatalf("Expected (%v, %v) to map back into the world", x, y)
		}
		if !geometry.IsCloseEps(got.X, p.X, 1e-6) || !geometry.IsCloseEps(got.Y, p.Y, 1e-6) {
			t.Errorf("Expected %v, got %v", p, got)
		}
	}

	// the band above the box is outside the bounds
	if _, ok := v.ToWorld(200, 50); ok {
		t.Error("Expected a pixel above the box to be outside")
	}
}
