package maploader

import "chosenoffset.com/wallcaster/internal/core/geometry"

// Tile glyphs. Triangles are named after the corner their right angle
// sits in.
const (
	GlyphBox        = '#'
	GlyphBoxAlt     = '*'
	GlyphUpperLeft  = '/'
	GlyphUpperRight = '&'
	GlyphLowerRight = '%'
	GlyphLowerLeft  = '`'
)

// IsSolid reports whether a glyph fills its whole tile
func IsSolid(glyph byte) bool {
	return glyph == GlyphBox || glyph == GlyphBoxAlt
}

// tileEdges lists a glyph's edges relative to its upper left corner, with
// y pointing up. Axis aligned edges always run left to right or top to
// bottom so a shared edge comes out identical from both tiles.
var tileEdges = map[byte][][2]geometry.Point{
	GlyphBox: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}},
		{{X: 0, Y: -1}, {X: 1, Y: -1}},
	},
	GlyphUpperLeft: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 0, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}},
	},
	GlyphUpperRight: {
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 1, Y: -1}},
		{{X: 0, Y: 0}, {X: 1, Y: -1}},
	},
	GlyphLowerRight: {
		{{X: 0, Y: -1}, {X: 1, Y: -1}},
		{{X: 1, Y: 0}, {X: 1, Y: -1}},
		{{X: 0, Y: -1}, {X: 1, Y: 0}},
	},
	GlyphLowerLeft: {
		{{X: 0, Y: 0}, {X: 1, Y: -1}},
		{{X: 0, Y: -1}, {X: 1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: -1}},
	},
}

func init() {
	tileEdges[GlyphBoxAlt] = tileEdges[GlyphBox]
}

// BuildWalls turns a glyph layout into wall segments.
// Row 0 is the top of the map; the glyph at column x of row i has its upper
// left corner at (x, len(rows)-i).
func BuildWalls(rows []string) []geometry.Segment {
	// Step 1: emit every edge of every glyph
	var edges []geometry.Segment
	top := float64(len(rows))
	for i, row := range rows {
		y := top - float64(i)
		for x := 0; x < len(row); x++ {
			for _, e := range tileEdges[row[x]] {
				corner := geometry.Point{X: float64(x), Y: y}
				edges = append(edges, geometry.Segment{
					Start: corner.Add(e[0]),
					End:   corner.Add(e[1]),
				})
			}
		}
	}

	// Step 2: an edge produced twice lies between two filled tiles
	exposed := removeSharedEdges(edges)

	// Step 3: merge colinear runs into single walls
	return mergeColinearSegments(exposed)
}

// removeSharedEdges drops every edge that occurs more than once
func removeSharedEdges(edges []geometry.Segment) []geometry.Segment {
	counts := make(map[geometry.Segment]int, len(edges))
	for _, e := range edges {
		counts[e]++
	}

	var result []geometry.Segment
	for _, e := range edges {
		if counts[e] == 1 {
			result = append(result, e)
		}
	}
	return result
}

// mergeColinearSegments combines segments that continue each other
func mergeColinearSegments(segments []geometry.Segment) []geometry.Segment {
	if len(segments) == 0 {
		return segments
	}

	merged := make([]bool, len(segments))
	var result []geometry.Segment

	for i := 0; i < len(segments); i++ {
		if merged[i] {
			continue
		}

		current := segments[i]
		merged[i] = true

		// Keep extending until nothing else continues this segment
		extended := true
		for extended {
			extended = false

			for j := 0; j < len(segments); j++ {
				if merged[j] {
					continue
				}

				if joined, ok := joinSegments(current, segments[j]); ok {
					current = joined
					merged[j] = true
					extended = true
					break
				}
			}
		}

		result = append(result, current)
	}

	return result
}

// joinSegments merges two segments with equal slope that share an endpoint
func joinSegments(a, b geometry.Segment) (geometry.Segment, bool) {
	if a.Slope() != b.Slope() {
		return geometry.Segment{}, false
	}

	var joined geometry.Segment
	switch {
	case a.End == b.Start:
		joined = geometry.Segment{Start: a.Start, End: b.End}
	case a.Start == b.End:
		joined = geometry.Segment{Start: b.Start, End: a.End}
	case a.End == b.End:
		joined = geometry.Segment{Start: a.Start, End: b.Start}
	case a.Start == b.Start:
		joined = geometry.Segment{Start: a.End, End: b.End}
	default:
		return geometry.Segment{}, false
	}

	if joined.Start == joined.End {
		return geometry.Segment{}, false
	}
	return joined, true
}
