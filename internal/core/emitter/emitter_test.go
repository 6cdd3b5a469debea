package emitter

import (
	"math"
	"testing"

	"chosenoffset.com/raywalk/internal/core/geom"
)

// flatWall is a long vertical wall at x=5, perpendicular to a zero heading.
var flatWall = []geom.Segment{
	{A: geom.Point{X: 5, Y: -100}, B: geom.Point{X: 5, Y: 100}},
}

func newTestEmitter(t *testing.T, numRays int) *Emitter {
	t.Helper()
	e, err := New(geom.Point{}, 0, math.Pi/3, numRays)
	if err != nil {
		t.Fatalf("Failed to create emitter: %v", err)
	}
	return e
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		fov     float64
		numRays int
	}{
		{"zero rays", math.Pi / 3, 0},
		{"negative rays", math.Pi / 3, -1},
		{"zero fov", 0, 50},
		{"negative fov", -1, 50},
		{"full circle fov", 2 * math.Pi, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(geom.Point{}, 0, tt.fov, tt.numRays); err == nil {
				t.Errorf("Expected error for fov=%v numRays=%d", tt.fov, tt.numRays)
			}
		})
	}

	if _, err := New(geom.Point{}, 0, math.Pi/3, 1); err != nil {
		t.Errorf("Expected a single-ray emitter to be valid, got %v", err)
	}
}

func TestLookBufferShape(t *testing.T) {
	e := newTestEmitter(t, 50)

	depth := e.Look(flatWall)
	if len(depth) != 50 {
		t.Fatalf("Expected 50 samples, got %d", len(depth))
	}

	// Same length even when every ray misses.
	depth = e.Look(nil)
	if len(depth) != 50 {
		t.Fatalf("Expected 50 samples with no walls, got %d", len(depth))
	}
}

func TestLookOrderedByAngle(t *testing.T) {
	e := newTestEmitter(t, 9)
	e.Look(flatWall)

	rays := e.Rays()
	if len(rays) != 9 {
		t.Fatalf("Expected 9 rays, got %d", len(rays))
	}
	for i := 1; i < len(rays); i++ {
		if rays[i].Angle <= rays[i-1].Angle {
			t.Fatalf("Ray angles not increasing at index %d: %v <= %v", i, rays[i].Angle, rays[i-1].Angle)
		}
	}

	// The fan spans heading ± fov/2 inclusive.
	if math.Abs(rays[0].Angle-(-math.Pi/6)) > 1e-9 {
		t.Errorf("Expected first ray at -fov/2, got %v", rays[0].Angle)
	}
	if math.Abs(rays[8].Angle-math.Pi/6) > 1e-9 {
		t.Errorf("Expected last ray at +fov/2, got %v", rays[8].Angle)
	}
}

func TestLookSingleRay(t *testing.T) {
	e := newTestEmitter(t, 1)
	depth := e.Look(flatWall)

	if len(depth) != 1 {
		t.Fatalf("Expected 1 sample, got %d", len(depth))
	}
	if math.Abs(depth[0]-5) > 1e-9 {
		t.Errorf("Expected the single central ray to hit at 5, got %v", depth[0])
	}
}

func TestLookClosestOfMany(t *testing.T) {
	e := newTestEmitter(t, 1)
	walls := []geom.Segment{
		{A: geom.Point{X: 7, Y: -10}, B: geom.Point{X: 7, Y: 10}},
		{A: geom.Point{X: 3, Y: -10}, B: geom.Point{X: 3, Y: 10}},
	}

	depth := e.Look(walls)
	if math.Abs(depth[0]-3) > 1e-9 {
		t.Errorf("Expected closest wall at 3, got %v", depth[0])
	}
}

func TestLookMissSentinel(t *testing.T) {
	e := newTestEmitter(t, 5)

	// Heading π points away from the wall at x=5.
	e.Rotate(math.Pi)
	depth := e.Look(flatWall)
	for i, d := range depth {
		if !math.IsInf(d, 1) {
			t.Errorf("Ray %d: expected NoHit sentinel, got %v", i, d)
		}
	}
}

func TestFisheyeCorrection(t *testing.T) {
	// With correction on (the default), a flat wall facing the emitter
	// reports the same distance on every ray.
	e := newTestEmitter(t, 21)
	depth := e.Look(flatWall)
	for i, d := range depth {
		if math.Abs(d-5) > 1e-9 {
			t.Errorf("Ray %d: expected corrected distance 5, got %v", i, d)
		}
	}

	// With correction off, the raw radial distance grows with the angular
	// offset from the heading: raw = 5 / cos(offset).
	e.ToggleFisheye()
	depth = e.Look(flatWall)
	center := 10 // middle ray looks straight ahead
	if math.Abs(depth[center]-5) > 1e-9 {
		t.Errorf("Central ray: expected raw distance 5, got %v", depth[center])
	}
	for i := 1; i <= center; i++ {
		if depth[center+i] <= depth[center+i-1] {
			t.Errorf("Raw distance should grow away from center, sample %d: %v <= %v",
				center+i, depth[center+i], depth[center+i-1])
		}
		offset := e.Rays()[center+i].Angle - e.Heading()
		want := 5 / math.Cos(offset)
		if math.Abs(depth[center+i]-want) > 1e-9 {
			t.Errorf("Ray %d: expected raw distance %v, got %v", center+i, want, depth[center+i])
		}
	}
}

func TestFisheyeToggleIdempotent(t *testing.T) {
	e := newTestEmitter(t, 21)
	before := append([]float64(nil), e.Look(flatWall)...)

	e.ToggleFisheye()
	e.ToggleFisheye()
	after := e.Look(flatWall)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Sample %d changed after double toggle: %v != %v", i, before[i], after[i])
		}
	}
}

func TestRotateOnlyChangesHeading(t *testing.T) {
	e := newTestEmitter(t, 7)
	pos := e.Position()

	e.Rotate(math.Pi / 2)
	if math.Abs(e.Heading()-math.Pi/2) > 1e-9 {
		t.Errorf("Expected heading π/2, got %v", e.Heading())
	}
	if e.Position() != pos {
		t.Error("Rotate must not change position")
	}
	if e.NumRays() != 7 || e.FOV() != math.Pi/3 || e.Fisheye() {
		t.Error("Rotate must not change fov, ray count, or fisheye flag")
	}
}

func TestRotateNormalizesHeading(t *testing.T) {
	e := newTestEmitter(t, 1)
	e.Rotate(-math.Pi / 2)
	want := 3 * math.Pi / 2
	if math.Abs(e.Heading()-want) > 1e-9 {
		t.Errorf("Expected heading %v, got %v", want, e.Heading())
	}

	e.Rotate(5 * math.Pi)
	if h := e.Heading(); h < 0 || h >= 2*math.Pi {
		t.Errorf("Heading %v outside [0, 2π)", h)
	}
}

func TestMoveAlongHeading(t *testing.T) {
	e := newTestEmitter(t, 7)
	e.Rotate(math.Pi / 2)

	e.Move(3)
	pos := e.Position()
	if math.Abs(pos.X) > 1e-9 || math.Abs(pos.Y-3) > 1e-9 {
		t.Errorf("Expected position (0, 3), got (%v, %v)", pos.X, pos.Y)
	}

	e.Move(-3)
	pos = e.Position()
	if math.Abs(pos.X) > 1e-9 || math.Abs(pos.Y) > 1e-9 {
		t.Errorf("Expected position back at origin, got (%v, %v)", pos.X, pos.Y)
	}

	if math.Abs(e.Heading()-math.Pi/2) > 1e-9 {
		t.Error("Move must not change heading")
	}
}

func TestMoveIgnoresWalls(t *testing.T) {
	// The emitter passes through walls; only rays are blocked.
	e := newTestEmitter(t, 1)
	e.Move(10)
	if pos := e.Position(); math.Abs(pos.X-10) > 1e-9 {
		t.Errorf("Expected emitter at x=10 regardless of walls, got %v", pos.X)
	}
	depth := e.Look(flatWall)
	if !math.IsInf(depth[0], 1) {
		t.Errorf("Expected NoHit once past the wall, got %v", depth[0])
	}
}
