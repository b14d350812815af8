package game

import "chosenoffset.com/wallcaster/internal/core/geometry"

// MapView projects world coordinates onto a pixel rectangle. The world box
// is scaled uniformly and centred, with world y pointing up the screen.
type MapView struct {
	Min, Max geometry.Point // padded world bounds

	scale   float64
	offsetX float64
	offsetY float64
}

// NewMapView fits the box [minimum, maximum], grown by padding on every
// side, into a width by height pixel area.
func NewMapView(minimum, maximum geometry.Point, padding float64, width, height int) MapView {
	pad := geometry.Point{X: padding, Y: padding}
	v := MapView{
		Min: minimum.Sub(pad),
		Max: maximum.Add(pad),
	}

	dx := v.Max.X - v.Min.X
	dy := v.Max.Y - v.Min.Y
	if dx <= 0 || dy <= 0 {
		return v
	}

	v.scale = min(float64(width)/dx, float64(height)/dy)
	v.offsetX = (float64(width) - dx*v.scale) / 2
	v.offsetY = (float64(height) - dy*v.scale) / 2
	return v
}

// Scale returns pixels per world unit.
func (v MapView) Scale() float64 {
	return v.scale
}

// Contains reports whether p lies inside the padded bounds.
func (v MapView) Contains(p geometry.Point) bool {
	return p.X >= v.Min.X && p.X <= v.Max.X && p.Y >= v.Min.Y && p.Y <= v.Max.Y
}

// ToWorld is the inverse of ToScreen. It reports false for pixels outside
// the padded bounds or when the view has no extent.
func (v MapView) ToWorld(x, y float64) (geometry.Point, bool) {
	if v.scale == 0 {
		return geometry.Point{}, false
	}
	p := geometry.Point{
		X: v.Min.X + (x-v.offsetX)/v.scale,
		Y: v.Max.Y - (y-v.offsetY)/v.scale,
	}
	return p, v.Contains(p)
}

// ToScreen returns the pixel position of p. Points outside the padded
// bounds are not visible.
func (v MapView) ToScreen(p geometry.Point) (x, y float32, visible bool) {
	if !v.Contains(p) {
		return 0, 0, false
	}
	sx := v.offsetX + (p.X-v.Min.X)*v.scale
	sy := v.offsetY + (v.Max.Y-p.Y)*v.scale
	return float32(sx), float32(sy), true
}
