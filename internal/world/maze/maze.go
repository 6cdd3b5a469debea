// Package maze supplies the wall segment lists the raycaster runs against.
// A layout stores walls as fractions of the viewport so the same maze fits
// any window size; Build scales it to pixel-space segments.
package maze

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"chosenoffset.com/raywalk/internal/core/geom"
)

// WallDef is one wall expressed in fractional [0,1] viewport coordinates.
type WallDef struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// SpawnPoint defines where the emitter starts, in fractional coordinates,
// plus its initial heading in radians.
type SpawnPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// Layout represents a loaded maze: an ordered wall list and a spawn point.
type Layout struct {
	Name  string     `json:"name"`
	Walls []WallDef  `json:"walls"`
	Spawn SpawnPoint `json:"spawn"`
}

// Demo returns the built-in maze: the four boundary walls enclosing the
// play area plus a handful of interior walls, with the emitter spawning
// near the center.
func Demo() *Layout {
	return &Layout{
		Name: "demo",
		Walls: []WallDef{
			// Boundary box. Rays always terminate on one of these, so the
			// no-hit path is unreachable unless a custom maze leaves a gap.
			{X1: 0, Y1: 0, X2: 1, Y2: 0},
			{X1: 1, Y1: 0, X2: 1, Y2: 1},
			{X1: 1, Y1: 1, X2: 0, Y2: 1},
			{X1: 0, Y1: 1, X2: 0, Y2: 0},
			// Interior walls.
			{X1: 0.27, Y1: 0.51, X2: 0.46, Y2: 0.57},
			{X1: 0.28, Y1: 0.71, X2: 0.30, Y2: 0.55},
			{X1: 0.73, Y1: 0.64, X2: 0.73, Y2: 0.90},
			{X1: 0.14, Y1: 0.41, X2: 0.58, Y2: 0.08},
			{X1: 0.72, Y1: 0.14, X2: 0.47, Y2: 0.12},
		},
		Spawn: SpawnPoint{X: 0.5, Y: 0.5, Heading: 0},
	}
}

// Load reads a maze layout from a JSON file and validates it.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze file %s: %w", path, err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", path, err)
	}

	if err := validateLayout(&layout); err != nil {
		return nil, fmt.Errorf("invalid maze in %s: %w", path, err)
	}

	return &layout, nil
}

// validateLayout checks that the layout can be scaled to any viewport.
func validateLayout(l *Layout) error {
	if len(l.Walls) == 0 {
		return fmt.Errorf("maze has no walls")
	}
	for i, w := range l.Walls {
		for _, v := range [4]float64{w.X1, w.Y1, w.X2, w.Y2} {
			if v < 0 || v > 1 {
				return fmt.Errorf("wall %d: coordinate %v outside [0,1]", i, v)
			}
		}
	}
	if l.Spawn.X < 0 || l.Spawn.X > 1 || l.Spawn.Y < 0 || l.Spawn.Y > 1 {
		return fmt.Errorf("spawn point (%v, %v) outside [0,1]", l.Spawn.X, l.Spawn.Y)
	}
	return nil
}

// Build scales the fractional layout to a width x height viewport and
// returns the flat segment list the raycaster consumes. Degenerate walls
// are dropped with a warning; the intersection routine would skip them
// anyway, but they carry no information.
func (l *Layout) Build(width, height float64) []geom.Segment {
	segments := make([]geom.Segment, 0, len(l.Walls))
	for i, w := range l.Walls {
		seg := geom.Segment{
			A: geom.Point{X: w.X1 * width, Y: w.Y1 * height},
			B: geom.Point{X: w.X2 * width, Y: w.Y2 * height},
		}
		if seg.A == seg.B {
			log.Printf("Skipping degenerate wall %d in maze %q", i, l.Name)
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

// SpawnPosition returns the spawn point scaled to a width x height viewport.
func (l *Layout) SpawnPosition(width, height float64) geom.Point {
	return geom.Point{X: l.Spawn.X * width, Y: l.Spawn.Y * height}
}
