// Convex decomposition of simple polygons for Go.
//
// This package takes a simple polygon, which may be non-convex and may wind
// either way, and splits it into convex polygons whose union is the input.
// Reflex vertices are resolved one at a time by bridging them to a visible
// vertex, or to a new Steiner point when no vertex is available. The number of
// pieces is not minimal.
package polydecomp

import (
	"github.com/osuushi/polydecomp/internal"
	"github.com/sirupsen/logrus"
)

type Point = internal.Point
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Decomposition = internal.Decomposition
type Option = internal.Option

var (
	ErrMalformedPolygon = internal.ErrMalformedPolygon
	ErrNoBridge         = internal.ErrNoBridge
	ErrDegenerateSplit  = internal.ErrDegenerateSplit
	ErrDepthExceeded    = internal.ErrDepthExceeded
)

// WithLogger sends per-split debug output to log. By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return internal.WithLogger(log)
}

// WithMaxDepth caps the recursion depth. The default is one more than the
// number of input vertices.
func WithMaxDepth(depth int) Option {
	return internal.WithMaxDepth(depth)
}

// Take a list of points and split the polygon they describe into convex
// polygons.
//
// The polygon must be simple. It needs at least 3 vertices, and no two
// vertices may coincide. Either winding is accepted; the result is always
// counterclockwise. On error, the result is nil; a failed run never returns
// partial output. Use errors.Is with the Err* values to tell failures apart.
func Decompose(points []Point, opts ...Option) (result *Decomposition, err error) {
	defer func() {
		recoveredErr := internal.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	polygon := Polygon{Points: points}
	return polygon.Decompose(opts...), nil
}
