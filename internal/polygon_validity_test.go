package internal

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a decomposition is valid. The rules are:
// 1. Every piece is counterclockwise and has no reflex vertices.
// 2. No piece has zero area. Counterclockwise already means positive area.
// 3. The sum of the areas of all pieces is equal to the area of the polygon.
// 4. Every vertex of the polygon is a vertex of some piece.
// 5. Every vertex of every piece is a vertex of the polygon or a Steiner point.
// 6. The pieces cover the same region as the polygon (checked by sampling).
func AssertValidDecomposition(t *testing.T, polygon Polygon, result *Decomposition) {
	require.NotNil(t, result)
	require.NotEmpty(t, result.Polygons)

	normalized := polygon.MakeCCW()

	var pieceArea float64
	for i, piece := range result.Polygons {
		require.GreaterOrEqual(t, piece.Len(), 3, "piece %d is degenerate", i)
		require.True(t, piece.IsCCW(), "piece %d is clockwise: %v", i, piece.Points)
		require.True(t, piece.IsConvex(), "piece %d has reflex vertices %v: %v", i, piece.ReflexIndices(), piece.Points)
		pieceArea += piece.SignedArea()
	}

	require.InDelta(t, normalized.SignedArea(), pieceArea, Tolerance*normalized.Area(),
		"sum of the areas of all pieces must equal the area of the polygon")

	for _, p := range normalized.Points {
		assert.True(t, containsVertex(result.Polygons, p), "input vertex %v is missing from the pieces", p)
	}
	for i, piece := range result.Polygons {
		for _, p := range piece.Points {
			known := containsPoint(normalized.Points, p) || containsPoint(result.SteinerPoints, p)
			assert.True(t, known, "piece %d has vertex %v that is neither an input vertex nor a Steiner point", i, p)
		}
	}

	validatePolygonsBySampling(t, result.Polygons, PolygonList{normalized})
}

func containsVertex(list PolygonList, p Point) bool {
	for _, poly := range list {
		if containsPoint(poly.Points, p) {
			return true
		}
	}
	return false
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}

// Sample a grid over the bounding box and check that membership agrees. Pieces
// share edges, so a point can only be inside more than one piece if it lies on
// a shared edge, which the grid is offset to avoid.
func validatePolygonsBySampling(t *testing.T, actualPolygons PolygonList, expectedPolygons PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range []PolygonList{actualPolygons, expectedPolygons} {
		bMinX, bMinY, bMaxX, bMaxY := list.bounds()
		minX = math.Min(minX, bMinX)
		minY = math.Min(minY, bMinY)
		maxX = math.Max(maxX, bMaxX)
		maxY = math.Max(maxY, bMaxY)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size, and nudge the grid off round numbers so samples
	// don't land on edges. The nudges differ so samples don't line up on
	// diagonals either. Both are fractions of the step, so any scale works.
	step := math.Max(maxX-minX, maxY-minY) / 50
	xNudge := 0.0123457 * step
	yNudge := 0.0234571 * step

	for y := minY + yNudge; y <= maxY; y += step {
		for x := minX + xNudge; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			inside := 0
			for _, piece := range actualPolygons {
				if piece.ContainsPointByEvenOdd(p) {
					inside++
				}
			}
			if expectedPolygons.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, inside, "point %v should be in exactly one piece", p)
			} else {
				assert.Equal(t, 0, inside, "point %v should not be in any piece", p)
			}
		}
	}
}
