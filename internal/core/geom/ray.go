package geom

import "math"

// NoHit is the distance reported when a ray crosses no wall.
var NoHit = math.Inf(1)

// Ray is an origin plus a direction angle in radians. Rays are transient:
// the emitter rebuilds its fan every frame and a ray has no identity beyond
// that frame.
type Ray struct {
	Origin Point
	Angle  float64
}

// Dir returns the unit direction vector for the ray's angle.
func (r Ray) Dir() (dx, dy float64) {
	return math.Cos(r.Angle), math.Sin(r.Angle)
}

// Intersect checks whether the ray crosses a line segment.
// Returns: (intersection point, distance along the ray, hit bool)
func (r Ray) Intersect(seg Segment) (Point, float64, bool) {
	// Ray: P = origin + t * (dx, dy) for t >= 0
	// Segment: Q = seg.A + u * (seg.B - seg.A) for 0 <= u <= 1
	dx, dy := r.Dir()

	segDX := seg.B.X - seg.A.X
	segDY := seg.B.Y - seg.A.Y

	// Solving the 2x2 linear system; a zero denominator means the ray and
	// segment are parallel. A degenerate segment also lands here.
	den := dx*segDY - dy*segDX
	if math.Abs(den) < 1e-10 {
		return Point{}, 0, false
	}

	diffX := r.Origin.X - seg.A.X
	diffY := r.Origin.Y - seg.A.Y

	t := (segDX*diffY - segDY*diffX) / den
	u := (dx*diffY - dy*diffX) / den

	// Reject crossings behind the origin or outside the segment's extent.
	if t < 0 || u < 0 || u > 1 {
		return Point{}, 0, false
	}

	// The direction vector is unit length, so t is the hit distance.
	return Point{X: r.Origin.X + t*dx, Y: r.Origin.Y + t*dy}, t, true
}

// ClosestHit tests the ray against every wall and returns the nearest
// intersection point and its distance. When no wall is hit the distance is
// NoHit and the point is the zero value.
func (r Ray) ClosestHit(walls []Segment) (Point, float64) {
	closest := NoHit
	var hit Point
	for _, wall := range walls {
		if pt, dist, ok := r.Intersect(wall); ok && dist < closest {
			closest = dist
			hit = pt
		}
	}
	return hit, closest
}
