package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/wallcaster/internal/core/raycast"
	"chosenoffset.com/wallcaster/internal/levelscanner"
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/simulation"
	"chosenoffset.com/wallcaster/internal/world/maploader"
)

// Manager owns the level list and swaps levels in and out of the shared
// world the caster reads.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Levels       []levelscanner.LevelEntry
	Current      int
	Caster       *raycast.Caster
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Game         *Game

	// Seconds per Update call, passed on to each level
	TickSeconds float64
}

// NewManager creates a manager. Call LoadLevel before running it.
func NewManager(cfg *simulation.Config, levels []levelscanner.LevelEntry, caster *raycast.Caster,
	r render.Renderer, input render.InputManager) *Manager {
	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Levels:       levels,
		Caster:       caster,
		Renderer:     r,
		InputMgr:     input,
		TickSeconds:  1.0 / 60.0,
	}
}

// Update handles level switching and quitting, then updates the level.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if m.InputMgr.IsKeyJustPressed(render.KeyTab) && len(m.Levels) > 1 {
		next := (m.Current + 1) % len(m.Levels)
		if err := m.LoadLevel(next); err != nil {
			log.Printf("Warning: Failed to switch level: %v", err)
		}
	}

	if m.Game == nil {
		return nil
	}
	return m.Game.Update()
}

// Draw draws the current level.
func (m *Manager) Draw(screen render.Image) {
	if m.Game != nil {
		m.Game.Draw(screen)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	if m.Game != nil {
		m.Game.ScreenWidth = outsideWidth
		m.Game.ScreenHeight = outsideHeight
	}
	return outsideWidth, outsideHeight
}

// LoadLevel loads Levels[index] into the caster's world. The current level
// is kept if the new one fails to load. Debug toggles and edit mode carry
// over.
//
// The world is replaced between frames, while every worker is idle.
func (m *Manager) LoadLevel(index int) error {
	if index < 0 || index >= len(m.Levels) {
		return fmt.Errorf("level index %d out of range [0, %d)", index, len(m.Levels))
	}
	entry := m.Levels[index]
	log.Printf("Loading level: %s", entry.Path)

	gameMap, err := maploader.LoadMap(entry.Path)
	if err != nil {
		return err
	}

	w := m.Caster.World()
	if w == nil {
		return errors.New("caster has no world")
	}

	g, err := NewGame(m.Config, gameMap, w, m.Caster, m.Renderer, m.InputMgr)
	if err != nil {
		return err
	}

	w.Replace(gameMap.Walls)
	log.Printf("Loaded level %s: %dx%d tiles, %d wall segments", entry.Name, gameMap.Width(), gameMap.Height(), len(gameMap.Walls))
	g.ScreenWidth = m.ScreenWidth
	g.ScreenHeight = m.ScreenHeight
	g.TickSeconds = m.TickSeconds

	if m.Game != nil {
		g.Debug = m.Game.Debug
		g.Camera.PlanarProjection = g.Debug.Get(OptionPlanar)
		g.MapTexture = m.Game.MapTexture
		g.Editor = m.Game.Editor
		g.Editor.cancel()
	}

	m.Game = g
	m.Current = index
	return nil
}
