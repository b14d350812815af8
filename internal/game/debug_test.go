package game

import (
	"testing"

	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/simulation"
)

func TestDebugOptionsDefaults(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Display.Shading = false

	d := NewDebugOptions(cfg)
	if !d.Get(OptionPlanar) || !d.Get(OptionDrawRays) || !d.Get(OptionShowMap) {
		t.Error("Expected planar, rays and map on by default")
	}
	if d.Get(OptionShading) {
		t.Error("Expected shading to follow the config")
	}
	if d.Get("missing") {
		t.Error("Expected unknown option to be false")
	}
	if len(d.Options()) != 4 {
		t.Errorf("Expected 4 options, got %d", len(d.Options()))
	}
}

func TestDebugOptionsToggleDelay(t *testing.T) {
	d := NewDebugOptions(simulation.DefaultConfig())
	input := newFakeInput()
	input.pressed[render.KeyR] = true

	if !d.Update(0.1, input) || d.Get(OptionDrawRays) {
		t.Fatal("Expected R to turn rays off")
	}

	// 0.2s of the 0.25s delay
	if d.Update(0.1, input) || d.Update(0.1, input) {
		t.Error("Expected no toggle inside the delay")
	}
	if d.Get(OptionDrawRays) {
		t.Error("Expected rays to stay off inside the delay")
	}

	if !d.Update(0.1, input) || !d.Get(OptionDrawRays) {
		t.Error("Expected held key to toggle again after the delay")
	}
}

func TestDebugOptionsNoKeys(t *testing.T) {
	d := NewDebugOptions(simulation.DefaultConfig())
	if d.Update(1, newFakeInput()) {
		t.Error("Expected no toggle without input")
	}
}

func TestDebugOptionsSeveralKeys(t *testing.T) {
	d := NewDebugOptions(simulation.DefaultConfig())
	input := newFakeInput()
	input.pressed[render.KeyC] = true
	input.pressed[render.KeyM] = true

	d.Update(0, input)
	if d.Get(OptionShading) || d.Get(OptionShowMap) {
		t.Error("Expected both held options to flip in the same tick")
	}
}
