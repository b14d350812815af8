// Package simulation provides the tunable settings for a wallcaster session.
// Settings are loaded from a JSON data file so each install can adjust the
// window, camera, movement and raycast parameters without rebuilding.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/wallcaster/internal/core/camera"
)

// Config holds all settings for a session
type Config struct {
	// Window
	Window WindowConfig `json:"window"`

	// Camera projection
	Camera CameraConfig `json:"camera"`

	// Movement and collision probes
	Movement MovementConfig `json:"movement"`

	// Worker pool and ray fan
	Raycast RaycastConfig `json:"raycast"`

	// Debug display defaults
	Display DisplayConfig `json:"display"`
}

// WindowConfig defines the viewer window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// CameraConfig defines the camera's projection
type CameraConfig struct {
	FOVDegrees       float64 `json:"fov_degrees"`       // Must be in (0, 180)
	PlanarProjection bool    `json:"planar_projection"` // Flat projection plane instead of equal angles
}

// MovementConfig defines movement speed and wall clearance
type MovementConfig struct {
	MoveSpeed          float64 `json:"move_speed"`           // World units per second
	TurnSpeedDegrees   float64 `json:"turn_speed_degrees"`   // Degrees per second
	ProbeCount         int     `json:"probe_count"`          // Rays cast per attempted move
	ProbeSpreadDegrees float64 `json:"probe_spread_degrees"` // Total fan angle around the move
	ProbeMargin        float64 `json:"probe_margin"`         // Clearance kept from walls
}

// RaycastConfig defines the worker pool
type RaycastConfig struct {
	Workers int `json:"workers"` // 0 means one per CPU
	Rays    int `json:"rays"`    // Rays cast per frame
}

// DisplayConfig defines the initial state of the debug toggles
type DisplayConfig struct {
	ShowMap     bool    `json:"show_map"`
	DrawRays    bool    `json:"draw_rays"`
	Shading     bool    `json:"shading"`
	Padding     float64 `json:"padding"`      // World units around the map bounds
	ToggleDelay float64 `json:"toggle_delay"` // Seconds between repeated toggles
}

// DefaultConfig returns the settings the viewer ships with
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "Wallcaster",
		},
		Camera: CameraConfig{
			FOVDegrees:       64,
			PlanarProjection: true,
		},
		Movement: MovementConfig{
			MoveSpeed:          3,
			TurnSpeedDegrees:   120,
			ProbeCount:         camera.DefaultProbeCount,
			ProbeSpreadDegrees: 90,
			ProbeMargin:        camera.DefaultProbeMargin,
		},
		Raycast: RaycastConfig{
			Workers: 0,
			Rays:    320,
		},
		Display: DisplayConfig{
			ShowMap:     true,
			DrawRays:    true,
			Shading:     true,
			Padding:     1,
			ToggleDelay: 0.25,
		},
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the viewer cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case !(c.Camera.FOVDegrees > 0 && c.Camera.FOVDegrees < 180):
		return fmt.Errorf("fov_degrees must be in (0, 180), got %v", c.Camera.FOVDegrees)
	case c.Raycast.Rays <= 0:
		return fmt.Errorf("rays must be positive, got %d", c.Raycast.Rays)
	case c.Raycast.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Raycast.Workers)
	case c.Movement.ProbeCount < 1:
		return fmt.Errorf("probe_count must be at least 1, got %d", c.Movement.ProbeCount)
	case c.Movement.MoveSpeed < 0 || c.Movement.TurnSpeedDegrees < 0:
		return errors.New("movement speeds must not be negative")
	case c.Movement.ProbeMargin < 0 || c.Movement.ProbeSpreadDegrees < 0:
		return errors.New("probe margin and spread must not be negative")
	case c.Display.Padding < 0 || c.Display.ToggleDelay < 0:
		return errors.New("display padding and toggle delay must not be negative")
	}
	return nil
}

// FOV returns the field of view in radians
func (c *Config) FOV() float64 {
	return c.Camera.FOVDegrees * math.Pi / 180
}

// TurnSpeed returns the turn speed in radians per second
func (c *Config) TurnSpeed() float64 {
	return c.Movement.TurnSpeedDegrees * math.Pi / 180
}

// Probes returns the camera's collision probe fan
func (c *Config) Probes() camera.MoveProbes {
	return camera.MoveProbes{
		Count:  c.Movement.ProbeCount,
		Spread: c.Movement.ProbeSpreadDegrees * math.Pi / 180,
		Margin: c.Movement.ProbeMargin,
	}
}
