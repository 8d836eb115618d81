package internal

import "math"

// Orientation predicates. These are the only primitives used to reason about
// winding, reflexivity and visibility, so they all share the same notion of
// "collinear": the sine of the angle at a is within Tolerance of zero. Raw
// cross products are in squared coordinate units, so comparing them against a
// fixed tolerance would make real turns vanish on small polygons.

// Twice the signed area of the triangle abc. Positive when c lies to the left
// of the directed line a->b.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// 1 if c is left of a->b, -1 if right, 0 if collinear
func side(a, b, c Point) int {
	area := Cross(a, b, c)
	limit := Tolerance * math.Hypot(b.X-a.X, b.Y-a.Y) * math.Hypot(c.X-a.X, c.Y-a.Y)
	switch {
	case math.Abs(area) <= limit:
		return 0
	case area > 0:
		return 1
	}
	return -1
}

func Collinear(a, b, c Point) bool {
	return side(a, b, c) == 0
}

func Left(a, b, c Point) bool {
	return side(a, b, c) > 0
}

func LeftOn(a, b, c Point) bool {
	return !Right(a, b, c)
}

func Right(a, b, c Point) bool {
	return side(a, b, c) < 0
}

func RightOn(a, b, c Point) bool {
	return !Left(a, b, c)
}

func SqDist(p, q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Intersect the infinite lines through p1-p2 and q1-q2. Each line is written as
// a*x + b*y = c and the 2x2 system is solved directly. If the lines are
// parallel (or coincident) there is no usable point, and ok is false. As with
// the orientation tests, parallelism is judged on the angle between the lines.
func Intersection(p1, p2, q1, q2 Point) (point Point, ok bool) {
	a1 := p2.Y - p1.Y
	b1 := p1.X - p2.X
	c1 := a1*p1.X + b1*p1.Y

	a2 := q2.Y - q1.Y
	b2 := q1.X - q2.X
	c2 := a2*q1.X + b2*q1.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) <= Tolerance*math.Hypot(a1, b1)*math.Hypot(a2, b2) {
		return Point{}, false
	}
	return Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// Does the point lie on the closed segment? The bounding box is padded in
// proportion to the segment's length.
func (s Segment) Contains(p Point) bool {
	if !Collinear(s.Start, s.End, p) {
		return false
	}
	pad := Tolerance * math.Sqrt(SqDist(s.Start, s.End))
	return p.X >= min(s.Start.X, s.End.X)-pad &&
		p.X <= max(s.Start.X, s.End.X)+pad &&
		p.Y >= min(s.Start.Y, s.End.Y)-pad &&
		p.Y <= max(s.Start.Y, s.End.Y)+pad
}

// True if the two segments cross at a single point interior to both. Touching
// at an endpoint and collinear overlap do not count.
func (s Segment) CrossesProperly(other Segment) bool {
	return strictlyOpposite(s.Start, s.End, other.Start, other.End) &&
		strictlyOpposite(other.Start, other.End, s.Start, s.End)
}

func strictlyOpposite(a, b, p, q Point) bool {
	return (Left(a, b, p) && Right(a, b, q)) || (Right(a, b, p) && Left(a, b, q))
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
