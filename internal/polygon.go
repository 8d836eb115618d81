package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Wrapped read-only access, so At(-1) is the last vertex and At(len) is the
// first.
func (poly Polygon) At(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

func (poly Polygon) Len() int {
	return len(poly.Points)
}

// Even odd point-in-polygon. This is provided primarily for testing that a
// decomposition covers exactly the same region as its input.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.At(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		// X coordinate where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}

// Bounding box of every vertex in the list
func (list PolygonList) bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range list {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return
}

// Largest side of the bounding box
func (poly Polygon) extent() float64 {
	minX, minY, maxX, maxY := PolygonList{poly}.bounds()
	return math.Max(maxX-minX, maxY-minY)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) Clone() Polygon {
	return Polygon{Points: append([]Point(nil), poly.Points...)}
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.At(i + 1)
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	area := poly.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Index of the lowest vertex, breaking ties toward the larger X. That vertex is
// always on the convex hull, so the turn there tells us the winding.
func (poly Polygon) bottomRightIndex() int {
	br := 0
	for i := 1; i < len(poly.Points); i++ {
		if poly.Points[i].Below(poly.Points[br]) {
			br = i
		}
	}
	return br
}

// Return the polygon with counterclockwise winding, reversing it if the turn at
// its bottom right vertex is not a left turn. Running it twice is the same as
// running it once.
func (poly Polygon) MakeCCW() Polygon {
	br := poly.bottomRightIndex()
	if !Left(poly.At(br-1), poly.At(br), poly.At(br+1)) {
		return poly.Reverse()
	}
	return poly
}

// On a counterclockwise polygon, a vertex is reflex when its interior angle
// exceeds 180°, which is exactly a right turn through it.
func (poly Polygon) IsReflex(i int) bool {
	return Right(poly.At(i-1), poly.At(i), poly.At(i+1))
}

func (poly Polygon) ReflexIndices() []int {
	var indices []int
	for i := range poly.Points {
		if poly.IsReflex(i) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (poly Polygon) IsConvex() bool {
	for i := range poly.Points {
		if poly.IsReflex(i) {
			return false
		}
	}
	return true
}

// Check the preconditions we can check cheaply. Simplicity is assumed, not
// verified.
func (poly Polygon) Validate() error {
	n := len(poly.Points)
	if n < 3 {
		return errors.Wrapf(ErrMalformedPolygon, "polygon has %d vertices, need at least 3", n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if poly.Points[i].Equal(poly.Points[j]) {
				return errors.Wrapf(ErrMalformedPolygon, "vertices %d and %d coincide at %v", i, j, poly.Points[i])
			}
		}
	}
	// Zero area relative to the size of the polygon, so that tiny polygons are
	// judged the same way as large ones
	extent := poly.extent()
	if poly.Area() <= Tolerance*extent*extent {
		return errors.Wrap(ErrMalformedPolygon, "polygon has zero area")
	}
	return nil
}
