package levelscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LevelEntry represents a discoverable level in the data directory
type LevelEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the level file
}

// ScanLevels scans <dataPath>/levels for level files.
// Returns one LevelEntry per JSON file, sorted by name.
func ScanLevels(dataPath string) ([]LevelEntry, error) {
	levelsPath := filepath.Join(dataPath, "levels")
	entries, err := os.ReadDir(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var levels []LevelEntry

	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Skip hidden files
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		// Settings may live next to the levels
		if name == "config.json" {
			continue
		}

		levels = append(levels, LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(levelsPath, name),
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})

	return levels, nil
}

// Find returns the level with the given name
func Find(levels []LevelEntry, name string) (LevelEntry, bool) {
	for _, level := range levels {
		if level.Name == name {
			return level, true
		}
	}
	return LevelEntry{}, false
}
