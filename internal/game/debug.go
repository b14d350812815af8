package game

import (
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/simulation"
)

// Debug option names
const (
	OptionPlanar   = "planar_projection"
	OptionDrawRays = "draw_rays"
	OptionShading  = "shading"
	OptionShowMap  = "show_map"
)

// DebugOption binds a key to a boolean option.
type DebugOption struct {
	Key  render.Key
	Name string
}

// DebugOptions holds the viewer's toggles. A held key flips its option
// once per toggle delay rather than every tick.
type DebugOptions struct {
	options     []DebugOption
	values      map[string]bool
	toggleDelay float64
	toggleTime  float64
}

// NewDebugOptions creates the viewer's toggles with defaults from cfg.
func NewDebugOptions(cfg *simulation.Config) *DebugOptions {
	d := &DebugOptions{
		values:      make(map[string]bool),
		toggleDelay: cfg.Display.ToggleDelay,
	}
	d.Add(render.KeyP, OptionPlanar, cfg.Camera.PlanarProjection)
	d.Add(render.KeyR, OptionDrawRays, cfg.Display.DrawRays)
	d.Add(render.KeyC, OptionShading, cfg.Display.Shading)
	d.Add(render.KeyM, OptionShowMap, cfg.Display.ShowMap)
	return d
}

// Add registers an option.
func (d *DebugOptions) Add(key render.Key, name string, value bool) {
	d.options = append(d.options, DebugOption{Key: key, Name: name})
	d.values[name] = value
}

// Get returns an option's value. Unknown options are false.
func (d *DebugOptions) Get(name string) bool {
	return d.values[name]
}

// Set changes an option's value.
func (d *DebugOptions) Set(name string, value bool) {
	d.values[name] = value
}

// Options returns the registered options in registration order.
func (d *DebugOptions) Options() []DebugOption {
	return d.options
}

// Update flips every option whose key is held, unless a toggle happened
// within the last toggle delay. It reports whether anything changed.
func (d *DebugOptions) Update(elapsed float64, input render.InputManager) bool {
	d.toggleTime = max(0, d.toggleTime-elapsed)
	if d.toggleTime > 0 {
		return false
	}

	toggled := false
	for _, option := range d.options {
		if input.IsKeyPressed(option.Key) {
			d.values[option.Name] = !d.values[option.Name]
			d.toggleTime = d.toggleDelay
			toggled = true
		}
	}
	return toggled
}
