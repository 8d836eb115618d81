package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds a single <polygon>, drawn in whatever winding was convenient.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"arrow",
	"comb",
	"spiral",
	"zigzag",
}

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	poly, err := ReadSVGPolygon(fixture)
	if err != nil {
		log.Fatalf("Failed to read fixture %q: %v", name, err)
	}
	return poly
}

// Some ad hoc code specified fixtures

func UnitSquare() Polygon {
	return Polygon{[]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

// Reflex vertex at (1, 1), which can be bridged to (0, 0)
func LShape() Polygon {
	return Polygon{[]Point{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}}
}

// A V cut into the top of a rectangle. Both edges at the bottom of the V,
// extended, hit the bottom edge, so there is no vertex to bridge to.
func VNotch() Polygon {
	return Polygon{[]Point{{0, 0}, {10, 0}, {10, 4}, {6, 4}, {5, 2}, {4, 4}, {0, 4}}}
}

func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

func RegularPolygon(n int, radius float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return Polygon{points}
}

func ScalePolygon(poly Polygon, factor float64) Polygon {
	out := poly.Clone()
	for i := range out.Points {
		out.Points[i].X *= factor
		out.Points[i].Y *= factor
	}
	return out
}

// A random polygon that is star shaped around an off-origin center, so it is
// always simple. Vertex angles are jittered within their slots and radii vary
// between 30% and 100% of scale, which produces plenty of reflex vertices.
func RandomStar(rng *rand.Rand, scale float64) Polygon {
	n := 5 + rng.Intn(12)
	centerX, centerY := 3*scale, -2*scale
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * (float64(i) + 0.3 + 0.4*rng.Float64()) / float64(n)
		radius := scale * (0.3 + 0.7*rng.Float64())
		points[i] = Point{X: centerX + radius*math.Cos(angle), Y: centerY + radius*math.Sin(angle)}
	}
	return Polygon{points}
}
