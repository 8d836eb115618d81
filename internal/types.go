package internal

// Points are values. Every recursive call works on its own copy of the vertex
// sequence, and Steiner points are synthesized rather than shared, so there is
// no pointer identity to preserve.
type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

type Segment struct {
	Start Point
	End   Point
}

// The result of a decomposition run. Polygons are in discovery order. The two
// diagnostic lists are append-only for the lifetime of a single run.
type Decomposition struct {
	Polygons       PolygonList
	ReflexVertices []Point
	SteinerPoints  []Point
}
