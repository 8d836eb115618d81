package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This is
// for coordinates, where it decides whether two vertices coincide. Orientation
// tests use a scale-aware tolerance instead; see side.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the larger X value is "lower". The lowest point of a
// polygon under this ordering is always on its convex hull. The comparison is
// exact, since a tolerant tie could pick a vertex off the hull.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X > otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) Midpoint(other Point) Point {
	return Point{X: (p.X + other.X) / 2, Y: (p.Y + other.Y) / 2}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values, so At(-1) is the last vertex.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
