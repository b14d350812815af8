package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/render"
)

var (
	backgroundColor = color.RGBA{8, 8, 8, 255}
	wallColor       = color.RGBA{192, 192, 192, 255}
	missColor       = color.RGBA{48, 48, 64, 255}
	cameraColor     = color.RGBA{255, 255, 255, 255}
	hoverColor      = color.RGBA{221, 176, 31, 255}
	draftColor      = color.RGBA{92, 178, 204, 255}
	normalColor     = color.RGBA{204, 92, 92, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the map layer and the status text.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	screen.Fill(backgroundColor)

	if g.Debug.Get(OptionShowMap) {
		side := min(w, h)
		if side > 0 {
			g.drawMap(side)

			g.MapX = float64(w-side) / 2
			g.MapY = float64(h-side) / 2

			opts := &render.DrawImageOptions{}
			opts.GeoM = render.NewGeoM()
			opts.GeoM.Translate(g.MapX, g.MapY)
			screen.DrawImage(g.MapTexture, opts)
		}
	}

	g.drawHUD(screen)
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}

// drawMap renders the top-down view into the square map texture.
func (g *Game) drawMap(side int) {
	if g.MapTexture == nil || needsResize(g.MapTexture, side, side) {
		if g.MapTexture != nil {
			g.MapTexture.Dispose()
		}
		g.MapTexture = g.Renderer.NewImage(side, side)
	}

	minimum, maximum := g.World.Bounds()
	g.View = NewMapView(minimum, maximum, g.Config.Display.Padding, side, side)

	g.MapTexture.Clear()
	g.Renderer.FillRect(g.MapTexture, 0, 0, float32(side), float32(side), backgroundColor)

	if g.Debug.Get(OptionDrawRays) {
		g.drawRays(g.MapTexture)
	}
	g.drawWalls(g.MapTexture)
	if g.Editor.Active {
		g.drawEditor(g.MapTexture)
	}
	g.drawCamera(g.MapTexture)
}

func (g *Game) drawRays(dst render.Image) {
	for i, hit := range g.Hits {
		if i >= len(g.Rays) {
			break
		}
		ray := g.Rays[i]

		end := ray.DistantPoint()
		clr := color.Color(missColor)
		if hit.Hit {
			end = hit.Point
			clr = rayColor(hit.Distance)
		}

		g.strokeWorldLine(dst, ray.Start, end, 1, clr)
	}
}

// rayColor dims with distance.
func rayColor(distance float64) color.Color {
	f := 1 / max(1, distance/4)
	return color.RGBA{uint8(31 * f), uint8(192 * f), uint8(128 * f), 255}
}

func (g *Game) drawWalls(dst render.Image) {
	forward := g.Camera.ForwardVector()
	shading := g.Debug.Get(OptionShading)

	for _, wall := range g.World.Walls() {
		clr := color.Color(wallColor)
		if shading {
			clr = shadeColor(wall.SurfaceNormal().Dot(forward))
		}
		g.strokeWorldLine(dst, wall.Start, wall.End, 2, clr)
	}
}

// shadeColor maps a surface facing in [-1, 1] to a grey level.
func shadeColor(facing float64) color.Color {
	facing = max(-1, min(1, facing))
	v := uint8(160 + 95*facing)
	return color.RGBA{v, v, v, 255}
}

func (g *Game) drawCamera(dst render.Image) {
	loc := g.Camera.Location
	x, y, ok := g.View.ToScreen(loc)
	if !ok {
		return
	}

	half := g.Camera.ViewingAngle / 2
	left := loc.Add(geometry.Ray{Angle: g.Camera.Direction - half}.Direction())
	right := loc.Add(geometry.Ray{Angle: g.Camera.Direction + half}.Direction())
	g.strokeWorldLine(dst, loc, left, 2, cameraColor)
	g.strokeWorldLine(dst, loc, right, 2, cameraColor)

	g.Renderer.FillCircle(dst, x, y, 3, cameraColor)
}

// drawEditor marks every wall's facing side with an arrow, and highlights
// the wall under the cursor and the one being drawn.
func (g *Game) drawEditor(dst render.Image) {
	for _, wall := range g.World.Walls() {
		g.drawNormalArrow(dst, wall)
	}

	if hovered, ok := g.Editor.Hovered(); ok {
		g.strokeWorldLine(dst, hovered.Start, hovered.End, 2, hoverColor)
	}
	if draft, ok := g.Editor.Draft(); ok {
		g.strokeWorldLine(dst, draft.Start, draft.End, 2, draftColor)
		g.drawNormalArrow(dst, draft)
	}
	if p, ok := g.Editor.Cursor(); ok {
		if x, y, visible := g.View.ToScreen(p); visible {
			g.Renderer.FillCircle(dst, x, y, 2, draftColor)
		}
	}
}

const (
	arrowLength = 0.25
	arrowHead   = 0.08
)

func (g *Game) drawNormalArrow(dst render.Image, wall geometry.Segment) {
	normal := wall.SurfaceNormal()
	if normal.IsZero() {
		return
	}
	mid := wall.Start.Add(wall.Delta().Scale(0.5))
	tip := mid.Add(normal.Scale(arrowLength))
	g.strokeWorldLine(dst, mid, tip, 1, normalColor)

	back := normal.Angle() + math.Pi
	for _, side := range []float64{-math.Pi / 4, math.Pi / 4} {
		leg := geometry.Ray{Start: tip, Angle: back + side}.ToSegmentLength(arrowHead)
		g.strokeWorldLine(dst, leg.Start, leg.End, 1, normalColor)
	}
}

// strokeWorldLine draws a world-space segment if both ends are visible.
func (g *Game) strokeWorldLine(dst render.Image, from, to geometry.Point, width float32, clr color.Color) {
	x0, y0, ok0 := g.View.ToScreen(from)
	x1, y1, ok1 := g.View.ToScreen(to)
	if !ok0 || !ok1 {
		return
	}
	g.Renderer.StrokeLine(dst, x0, y0, x1, y1, width, clr)
}

func (g *Game) drawHUD(screen render.Image) {
	name := "untitled"
	if g.GameMap != nil && g.GameMap.Data.Name != "" {
		name = g.GameMap.Data.Name
	}

	loc := g.Camera.Location
	degrees := geometry.NormalizeAngle(g.Camera.Direction) * 180 / math.Pi
	status := fmt.Sprintf("%s  pos (%.2f, %.2f)  dir %.1f  hits %d/%d",
		name, loc.X, loc.Y, degrees, g.HitCount(), len(g.Hits))

	toggles := ""
	for _, option := range g.Debug.Options() {
		state := "off"
		if g.Debug.Get(option.Name) {
			state = "on"
		}
		toggles += fmt.Sprintf("%s:%s  ", option.Name, state)
	}

	_, lineHeight := g.Renderer.MeasureText(status, 1.0)
	g.Renderer.DrawText(screen, status, 10, 10, textColor, 1.0)
	g.Renderer.DrawText(screen, toggles, 10, 10+lineHeight, textColor, 1.0)

	if g.Editor.Active {
		help := "edit: drag to draw  right click removes  F flips  E leaves"
		g.Renderer.DrawText(screen, help, 10, 10+2*lineHeight, textColor, 1.0)
	}
}
