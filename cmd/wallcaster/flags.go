package main

import "flag"

// Command-line flags. Values left at zero fall back to the config file.
var (
	// dataFlag is the directory holding config.json and levels/.
	dataFlag = flag.String("data", "data", "data directory containing config.json and levels/")

	// levelFlag selects a level by name; empty picks the first one found.
	levelFlag = flag.String("level", "", "level to load (file name without .json)")

	// configFlag overrides the config file location.
	configFlag = flag.String("config", "", "config file (default <data>/config.json)")

	// workersFlag overrides the number of raycast workers.
	workersFlag = flag.Int("workers", 0, "raycast workers, overriding the config (0 keeps the config value)")

	// raysFlag overrides the number of rays cast per frame.
	raysFlag = flag.Int("rays", 0, "rays per frame, overriding the config (0 keeps the config value)")

	// listFlag prints the discovered levels and exits.
	listFlag = flag.Bool("list", false, "list available levels and exit")
)
