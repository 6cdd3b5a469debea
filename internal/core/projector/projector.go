// Package projector maps a frame's depth buffer to shaded vertical wall
// columns for the pseudo-3D scene pane.
package projector

import (
	"fmt"
	"image/color"
	"math"
)

// Column is one vertical slice of visible wall. X/Y/W/H are in scene-pane
// pixels with the column vertically centered; Color is a neutral gray whose
// intensity encodes distance. Ray records which depth sample produced the
// column, since rays that hit nothing produce no column at all.
type Column struct {
	Ray   int
	X     float64
	Y     float64
	W     float64
	H     float64
	Color color.RGBA
}

// Projector converts depth buffers into column lists for a fixed viewport
// and ray count. The mapping is pure: the same depth buffer always yields
// the same columns.
type Projector struct {
	sceneW        float64
	sceneH        float64
	numRays       int
	colW          float64
	distProjPlane float64

	cols []Column // reused across frames
}

// New creates a projector for a sceneW x sceneH viewport. distProjPlane is
// precomputed from the field of view as (sceneW/2) / tan(fov/2), the
// distance at which the projection plane spans exactly the field of view.
func New(sceneW, sceneH int, fov float64, numRays int) (*Projector, error) {
	if sceneW <= 0 || sceneH <= 0 {
		return nil, fmt.Errorf("projector: invalid viewport %dx%d", sceneW, sceneH)
	}
	if numRays < 1 {
		return nil, fmt.Errorf("projector: ray count must be at least 1, got %d", numRays)
	}
	if fov <= 0 || fov >= 2*math.Pi {
		return nil, fmt.Errorf("projector: field of view must be in (0, 2π) radians, got %v", fov)
	}

	w := float64(sceneW)
	return &Projector{
		sceneW:        w,
		sceneH:        float64(sceneH),
		numRays:       numRays,
		colW:          w / float64(numRays),
		distProjPlane: (w / 2) / math.Tan(fov/2),
	}, nil
}

// DistProjPlane returns the distance to the projection plane.
func (p *Projector) DistProjPlane() float64 { return p.distProjPlane }

// Project converts one depth buffer into column descriptors, left to right.
// A sample holding the no-hit sentinel is skipped entirely rather than drawn
// at some fabricated height; callers see the gap through the Ray indices.
//
// The returned slice is owned by the projector and reused by the next call.
func (p *Projector) Project(depth []float64) []Column {
	cols := p.cols[:0]
	for i, d := range depth {
		if math.IsInf(d, 1) {
			continue // no wall visible along this ray
		}

		// Pinhole relation: column height shrinks inversely with distance.
		h := p.sceneW / d * p.distProjPlane
		shade := p.Shade(d)

		cols = append(cols, Column{
			Ray:   i,
			X:     float64(i) * p.colW,
			Y:     p.sceneH/2 - h/2,
			W:     p.colW,
			H:     h,
			Color: color.RGBA{R: shade, G: shade, B: shade, A: 0xFF},
		})
	}
	p.cols = cols
	return cols
}

// Shade maps a distance linearly from [0, sceneH] to [255, 0], clamped:
// closer walls render brighter.
func (p *Projector) Shade(d float64) uint8 {
	v := 255 * (1 - d/p.sceneH)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
