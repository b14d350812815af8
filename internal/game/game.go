package game

import (
	"fmt"
	"log"
	"math"

	"chosenoffset.com/wallcaster/internal/core/camera"
	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/core/raycast"
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/simulation"
	"chosenoffset.com/wallcaster/internal/world"
	"chosenoffset.com/wallcaster/internal/world/maploader"
)

// Game holds the state of one loaded level and drives a frame of
// movement and raycasting per tick.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	GameMap      *maploader.Map
	World        *world.World
	Camera       *camera.Camera
	Caster       *raycast.Caster
	Config       *simulation.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Debug        *DebugOptions
	Editor       *Editor

	// Seconds per Update call
	TickSeconds float64

	// Last cast frame, index-aligned
	Rays []geometry.Ray
	Hits []geometry.IntersectResult

	// Map layer, drawn with its top left corner at (MapX, MapY)
	MapTexture render.Image
	View       MapView
	MapX, MapY float64
}

// NewGame places a camera at the map's spawn point. The caster must be
// reading w, and w must hold the map's walls before the first Update.
func NewGame(cfg *simulation.Config, gameMap *maploader.Map, w *world.World, caster *raycast.Caster,
	r render.Renderer, input render.InputManager) (*Game, error) {
	cam, err := camera.New(gameMap.SpawnPoint(), gameMap.Direction(), cfg.FOV())
	if err != nil {
		return nil, fmt.Errorf("failed to create camera: %w", err)
	}
	cam.Probes = cfg.Probes()

	debug := NewDebugOptions(cfg)
	cam.PlanarProjection = debug.Get(OptionPlanar)

	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		GameMap:      gameMap,
		World:        w,
		Camera:       cam,
		Caster:       caster,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Debug:        debug,
		Editor:       NewEditor(),
		TickSeconds:  1.0 / 60.0,
	}, nil
}

// Update handles input and casts the frame's rays. Wall edits are applied
// here, while the workers are idle.
func (g *Game) Update() error {
	dt := g.TickSeconds

	g.Debug.Update(dt, g.InputMgr)
	g.Camera.PlanarProjection = g.Debug.Get(OptionPlanar)

	g.handleMovement(dt)
	g.handleEdits()

	return g.castRays()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) handleMovement(dt float64) {
	turn := g.Config.TurnSpeed() * dt
	if g.InputMgr.IsKeyPressed(render.KeyLeft) {
		g.Camera.Rotate(-turn)
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) {
		g.Camera.Rotate(turn)
	}

	step := g.Config.Movement.MoveSpeed * dt
	if g.InputMgr.IsKeyPressed(render.KeyW) || g.InputMgr.IsKeyPressed(render.KeyUp) {
		g.Camera.TryMove(0, step, g.World)
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) || g.InputMgr.IsKeyPressed(render.KeyDown) {
		g.Camera.TryMove(math.Pi, step, g.World)
	}

	// Strafe
	if g.InputMgr.IsKeyPressed(render.KeyA) {
		g.Camera.TryMove(-math.Pi/2, step, g.World)
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) {
		g.Camera.TryMove(math.Pi/2, step, g.World)
	}
}

func (g *Game) handleEdits() {
	if g.InputMgr.IsKeyJustPressed(render.KeyE) {
		g.Editor.Toggle()
	}

	// walls can only be picked on a visible map
	view := g.View
	if !g.Debug.Get(OptionShowMap) {
		view = MapView{}
	}
	if g.Editor.Update(g.InputMgr, view, g.MapX, g.MapY, g.World) {
		log.Printf("Edited walls: %d in world", g.World.Len())
	}
}

func (g *Game) castRays() error {
	rays, err := g.Camera.Rays(g.Config.Raycast.Rays)
	if err != nil {
		return fmt.Errorf("failed to build rays: %w", err)
	}

	hits, err := g.Caster.CastRays(rays)
	if err != nil {
		return fmt.Errorf("failed to cast rays: %w", err)
	}

	g.Rays = rays
	g.Hits = hits
	return nil
}

// HitCount returns how many rays of the last frame hit a wall.
func (g *Game) HitCount() int {
	n := 0
	for _, h := range g.Hits {
		if h.Hit {
			n++
		}
	}
	return n
}
