// Package emitter owns the viewer's pose and produces the per-frame depth
// buffer by casting a fan of rays against the wall set.
package emitter

import (
	"fmt"
	"math"

	"chosenoffset.com/raywalk/internal/core/geom"
)

// Emitter is the movable light source. A single instance exists per game;
// its pose is mutated only by the input handlers between frames, so a
// Look pass always observes one consistent pose.
type Emitter struct {
	position geom.Point
	heading  float64
	fov      float64
	numRays  int
	fisheye  bool

	// Per-frame buffers, allocated once and reused to avoid churn.
	depth []float64
	hits  []geom.Point
	rays  []geom.Ray
}

// New creates an emitter at the given position and heading. The field of
// view (radians) and ray count are fixed for the emitter's lifetime and are
// validated here; there is no recovery path for bad parameters later on.
func New(position geom.Point, heading, fov float64, numRays int) (*Emitter, error) {
	if numRays < 1 {
		return nil, fmt.Errorf("emitter: ray count must be at least 1, got %d", numRays)
	}
	if fov <= 0 || fov >= 2*math.Pi {
		return nil, fmt.Errorf("emitter: field of view must be in (0, 2π) radians, got %v", fov)
	}

	return &Emitter{
		position: position,
		heading:  normalizeAngle(heading),
		fov:      fov,
		numRays:  numRays,
		depth:    make([]float64, numRays),
		hits:     make([]geom.Point, numRays),
		rays:     make([]geom.Ray, numRays),
	}, nil
}

// Rotate adds delta (radians) to the heading, keeping it in [0, 2π).
func (e *Emitter) Rotate(delta float64) {
	e.heading = normalizeAngle(e.heading + delta)
}

// Move shifts the position delta units along the current heading. Negative
// delta moves backwards. The emitter performs no collision check: walls
// block rays, not the emitter itself.
func (e *Emitter) Move(delta float64) {
	e.position.X += delta * math.Cos(e.heading)
	e.position.Y += delta * math.Sin(e.heading)
}

// ToggleFisheye flips between corrected and raw radial distances. The flag
// is consulted on every Look pass, never baked into stored state.
func (e *Emitter) ToggleFisheye() {
	e.fisheye = !e.fisheye
}

// Look casts numRays evenly spaced rays spanning heading ± fov/2 against
// walls and returns the depth buffer, ordered by increasing ray angle.
// A ray that hits nothing stores geom.NoHit. Unless the fisheye flag is
// set, each raw radial distance is multiplied by cos(rayAngle - heading),
// which flattens the convex distortion a flat projection plane would
// otherwise show.
//
// The returned slice is owned by the emitter and reused by the next call.
func (e *Emitter) Look(walls []geom.Segment) []float64 {
	start := e.heading - e.fov/2
	step := 0.0
	if e.numRays > 1 {
		step = e.fov / float64(e.numRays-1)
	} else {
		// A single ray looks straight ahead.
		start = e.heading
	}

	for i := 0; i < e.numRays; i++ {
		angle := start + float64(i)*step
		ray := geom.Ray{Origin: e.position, Angle: angle}
		pt, dist := ray.ClosestHit(walls)
		if !e.fisheye && !math.IsInf(dist, 1) {
			dist *= math.Cos(angle - e.heading)
		}
		e.rays[i] = ray
		e.hits[i] = pt
		e.depth[i] = dist
	}
	return e.depth
}

// Position returns the current position.
func (e *Emitter) Position() geom.Point { return e.position }

// Heading returns the current heading in [0, 2π).
func (e *Emitter) Heading() float64 { return e.heading }

// FOV returns the field of view in radians.
func (e *Emitter) FOV() float64 { return e.fov }

// NumRays returns the number of rays cast per Look pass.
func (e *Emitter) NumRays() int { return e.numRays }

// Fisheye reports whether raw radial distances are stored.
func (e *Emitter) Fisheye() bool { return e.fisheye }

// Rays returns the fan generated by the last Look pass, ordered by
// increasing angle. The slice is reused across frames.
func (e *Emitter) Rays() []geom.Ray { return e.rays }

// Hits returns the intersection points from the last Look pass, index
// aligned with the depth buffer. The entry for a no-hit ray is the zero
// point; callers must check the depth buffer first.
func (e *Emitter) Hits() []geom.Point { return e.hits }

// normalizeAngle wraps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
