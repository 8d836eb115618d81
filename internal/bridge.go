package internal

import "github.com/pkg/errors"

// A bridge connects a reflex vertex to the point the polygon will be split
// along. Either Target names an existing vertex, or HasSteiner is set and the
// polygon is cut through a synthesized point on the edge between UpperIndex and
// LowerIndex.
type Bridge struct {
	Reflex int
	Target int

	// Where the two edges adjacent to the reflex vertex, extended past it, first
	// leave the polygon. LowerIndex is the end vertex of the edge hit by the
	// extension of (Reflex-1, Reflex); UpperIndex is the start vertex of the edge
	// hit by the extension of (Reflex+1, Reflex).
	LowerIndex, UpperIndex               int
	LowerIntersection, UpperIntersection Point

	HasSteiner bool
	Steiner    Point
}

// Nearest-candidate accumulator. It stays empty until something is offered, so
// "nothing found" can never be confused with a real result.
type candidate struct {
	point Point
	index int
	dist  float64
	found bool
}

func (c *candidate) offer(point Point, index int, dist float64) {
	if !c.found || dist < c.dist {
		*c = candidate{point: point, index: index, dist: dist, found: true}
	}
}

// Find the best bridge for the reflex vertex at index i of a counterclockwise
// polygon. The two edges at i are extended into the polygon until they hit the
// boundary. If both extensions hit the same edge, there is no vertex between
// them to connect to, and a Steiner point is placed halfway between the hits.
// Otherwise, the closest visible vertex between the hits, inside the cone
// formed by the extensions, is used.
func FindBridge(poly Polygon, i int) (Bridge, error) {
	n := poly.Len()
	prev, cur, next := poly.At(i-1), poly.At(i), poly.At(i+1)

	var lower, upper candidate
	for j := 0; j < n; j++ {
		// Edge (j-1, j) crossing the extension of prev->cur
		if Left(prev, cur, poly.At(j)) && RightOn(prev, cur, poly.At(j-1)) {
			p, ok := Intersection(prev, cur, poly.At(j), poly.At(j-1))
			// The hit must be past cur, not behind prev
			if ok && Right(next, cur, p) {
				lower.offer(p, j, SqDist(cur, p))
			}
		}

		// Edge (j, j+1) crossing the extension of next->cur
		if Left(next, cur, poly.At(j+1)) && RightOn(next, cur, poly.At(j)) {
			p, ok := Intersection(next, cur, poly.At(j), poly.At(j+1))
			if ok && Left(prev, cur, p) {
				upper.offer(p, j, SqDist(cur, p))
			}
		}
	}

	if !lower.found || !upper.found {
		return Bridge{}, errors.Wrapf(ErrNoBridge, "vertex %d at %v: edge extensions never leave the polygon", i, cur)
	}

	bridge := Bridge{
		Reflex:            i,
		Target:            -1,
		LowerIndex:        lower.index,
		UpperIndex:        upper.index,
		LowerIntersection: lower.point,
		UpperIntersection: upper.point,
	}

	if lower.index == CircularIndex(upper.index+1, n) {
		bridge.HasSteiner = true
		bridge.Steiner = lower.point.Midpoint(upper.point)
		return bridge, nil
	}

	last := upper.index
	if lower.index > last {
		last += n
	}
	var closest candidate
	for j := lower.index; j <= last; j++ {
		k := CircularIndex(j, n)
		if k == i {
			continue
		}
		p := poly.Points[k]
		if !LeftOn(prev, cur, p) || !RightOn(next, cur, p) {
			continue
		}
		d := SqDist(cur, p)
		if closest.found && d >= closest.dist {
			continue
		}
		if !poly.CanSee(i, k) {
			continue
		}
		closest.offer(p, k, d)
	}

	if !closest.found {
		return Bridge{}, errors.Wrapf(ErrNoBridge, "vertex %d at %v: no visible vertex between %d and %d", i, cur, lower.index, upper.index)
	}
	bridge.Target = closest.index
	return bridge, nil
}

// Is the segment between vertices a and b clear of the rest of the boundary? It
// may not cross any edge, nor pass through any other vertex. This does not
// check which side of the boundary the segment is on; callers establish that
// with the cone test at a.
func (poly Polygon) CanSee(a, b int) bool {
	n := poly.Len()
	diagonal := Segment{poly.Points[a], poly.Points[b]}
	for e := 0; e < n; e++ {
		f := CircularIndex(e+1, n)
		if e != a && e != b && diagonal.Contains(poly.Points[e]) {
			return false
		}
		if e == a || e == b || f == a || f == b {
			continue
		}
		if diagonal.CrossesProperly(Segment{poly.Points[e], poly.Points[f]}) {
			return false
		}
	}
	return true
}

// The vertices from index from to index to inclusive, walking forward and
// wrapping around the end.
func (poly Polygon) arc(from, to int) []Point {
	count := CircularIndex(to-from, poly.Len()) + 1
	// Room for a Steiner point
	points := make([]Point, 0, count+1)
	for k := 0; k < count; k++ {
		points = append(points, poly.At(from+k))
	}
	return points
}

// Cut the polygon along the bridge. The lower half runs forward from the reflex
// vertex to the bridge point; the upper half runs forward from the bridge point
// back to the reflex vertex. Both halves are fresh copies.
func (b Bridge) Split(poly Polygon) (lower, upper Polygon) {
	if b.HasSteiner {
		lower.Points = append(poly.arc(b.Reflex, b.UpperIndex), b.Steiner)
		upper.Points = append([]Point{b.Steiner}, poly.arc(b.LowerIndex, b.Reflex)...)
		return lower, upper
	}
	lower.Points = poly.arc(b.Reflex, b.Target)
	upper.Points = poly.arc(b.Target, b.Reflex)
	return lower, upper
}
