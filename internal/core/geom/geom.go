// Package geom provides the 2D primitives for the raycasting core: points,
// wall segments, and rays with their segment intersection test.
package geom

import "math"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Segment represents one wall as a finite line segment between two endpoints.
// Segments are immutable once constructed. A degenerate segment (A == B) is
// tolerated and simply never intersects anything.
type Segment struct {
	A, B Point
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
