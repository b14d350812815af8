// Package maploader builds level geometry from JSON level files. A level
// lays out its walls as rows of tile glyphs; every solid glyph contributes
// its edges and the loader keeps only the edges that separate solid tiles
// from open space.
package maploader

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/wallcaster/internal/core/geometry"
)

// SpawnPoint is where the camera starts
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MapData represents a level file
type MapData struct {
	Name         string     `json:"name"`
	Spawn        SpawnPoint `json:"spawn"`
	DirectionDeg float64    `json:"direction_deg"` // initial facing, 0 is Forward
	Tiles        []string   `json:"tiles"`         // row 0 is the top of the map
}

// Map is a loaded level with its wall segments
type Map struct {
	Data  *MapData
	Walls []geometry.Segment
}

// LoadMap loads a level from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load map file %s: %w", mapPath, err)
	}
	return m, nil
}

// ParseMap parses and validates level JSON and builds its walls
func ParseMap(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	m := &Map{
		Data:  &mapData,
		Walls: BuildWalls(mapData.Tiles),
	}

	if len(m.Walls) == 0 {
		return nil, fmt.Errorf("invalid map data: layout has no walls")
	}
	if err := m.validateSpawn(); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}

	return m, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if len(data.Tiles) == 0 {
		return fmt.Errorf("tiles are required")
	}
	if math.IsNaN(data.DirectionDeg) || math.IsInf(data.DirectionDeg, 0) {
		return fmt.Errorf("invalid direction: %v", data.DirectionDeg)
	}
	return nil
}

func (m *Map) validateSpawn() error {
	x, y := m.Data.Spawn.X, m.Data.Spawn.Y
	if x <= 0 || x >= float64(m.Width()) || y <= 0 || y >= float64(m.Height()) {
		return fmt.Errorf("spawn (%v, %v) outside map bounds %dx%d", x, y, m.Width(), m.Height())
	}

	glyph, err := m.GetTileAt(int(math.Floor(x)), m.Height()-int(math.Ceil(y)))
	if err == nil && IsSolid(glyph) {
		return fmt.Errorf("spawn (%v, %v) is inside a solid tile", x, y)
	}
	return nil
}

// Width returns the length of the longest row
func (m *Map) Width() int {
	width := 0
	for _, row := range m.Data.Tiles {
		width = max(width, len(row))
	}
	return width
}

// Height returns the number of rows
func (m *Map) Height() int {
	return len(m.Data.Tiles)
}

// GetTileAt returns the glyph at the given column and row. Short rows are
// padded with open space.
func (m *Map) GetTileAt(x, y int) (byte, error) {
	if x < 0 || x >= m.Width() || y < 0 || y >= m.Height() {
		return 0, fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	row := m.Data.Tiles[y]
	if x >= len(row) {
		return ' ', nil
	}
	return row[x], nil
}

// SpawnPoint returns the camera start location in world coordinates
func (m *Map) SpawnPoint() geometry.Point {
	return geometry.Point{X: m.Data.Spawn.X, Y: m.Data.Spawn.Y}
}

// Direction returns the initial facing in radians
func (m *Map) Direction() float64 {
	return m.Data.DirectionDeg * math.Pi / 180
}
