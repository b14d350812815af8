package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"chosenoffset.com/wallcaster/internal/core/raycast"
	"chosenoffset.com/wallcaster/internal/game"
	"chosenoffset.com/wallcaster/internal/levelscanner"
	ebitenrender "chosenoffset.com/wallcaster/internal/render/ebiten"
	"chosenoffset.com/wallcaster/internal/simulation"
	"chosenoffset.com/wallcaster/internal/world"
)

func main() {
	flag.Parse()

	configPath := *configFlag
	if configPath == "" {
		configPath = filepath.Join(*dataFlag, "config.json")
	}
	cfg, err := simulation.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workersFlag > 0 {
		cfg.Raycast.Workers = *workersFlag
	}
	if *raysFlag > 0 {
		cfg.Raycast.Rays = *raysFlag
	}

	// Scan data directory for available levels
	log.Println("Scanning data directory for available levels...")
	levels, err := levelscanner.ScanLevels(*dataFlag)
	if err != nil {
		log.Fatalf("Failed to scan data directory: %v", err)
	}
	if len(levels) == 0 {
		log.Fatalf("No levels found in %s", filepath.Join(*dataFlag, "levels"))
	}

	if *listFlag {
		for _, level := range levels {
			fmt.Printf("%s\t%s\n", level.Name, level.Path)
		}
		return
	}

	start := 0
	if *levelFlag != "" {
		level, ok := levelscanner.Find(levels, *levelFlag)
		if !ok {
			log.Fatalf("Unknown level %q (use -list to see available levels)", *levelFlag)
		}
		for i, l := range levels {
			if l == level {
				start = i
			}
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	caster := raycast.NewCaster(world.New(nil), cfg.Raycast.Workers)
	defer caster.Stop()

	manager := game.NewManager(cfg, levels, caster, renderer, inputMgr)
	manager.TickSeconds = 1.0 / float64(engine.TPS())
	if err := manager.LoadLevel(start); err != nil {
		caster.Stop()
		log.Fatalf("Failed to load level: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting viewer...")
	if err := engine.RunGame(manager); err != nil {
		caster.Stop()
		log.Fatal(err)
	}
}
