package internal

import (
	"github.com/osuushi/polydecomp/internal/dbg"
	"github.com/sirupsen/logrus"
)

// Recursive convex decomposition. Each call looks for the first reflex vertex
// by increasing index, bridges it, and recurses on the two halves. A call that
// finds no reflex vertex has a convex polygon and records it. Output is stable
// for a given input, but not minimal.

type decomposer struct {
	result   *Decomposition
	log      logrus.FieldLogger
	maxDepth int
}

// Decompose a simple polygon into convex pieces. The polygon may wind either
// way; it is normalized to counterclockwise first. This panics with a
// DecomposeError on malformed input or when no bridge can be found, so callers
// outside this package should go through the public API, which recovers.
func (poly Polygon) Decompose(opts ...Option) *Decomposition {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := poly.Validate(); err != nil {
		panic(DecomposeError{err})
	}

	maxDepth := o.maxDepth
	if maxDepth <= 0 {
		maxDepth = poly.Len() + 1
	}

	d := &decomposer{
		result:   &Decomposition{},
		log:      o.log,
		maxDepth: maxDepth,
	}
	d.decompose(poly.Clone().MakeCCW(), 0)
	return d.result
}

func (d *decomposer) decompose(poly Polygon, depth int) {
	if depth > d.maxDepth {
		fatalf(ErrDepthExceeded, "depth %d with %d vertices remaining", depth, poly.Len())
	}
	if poly.Len() < 3 {
		fatalf(ErrDegenerateSplit, "polygon has %d vertices at depth %d", poly.Len(), depth)
	}

	for i := range poly.Points {
		if !poly.IsReflex(i) {
			continue
		}
		d.result.ReflexVertices = append(d.result.ReflexVertices, poly.Points[i])

		bridge, err := FindBridge(poly, i)
		if err != nil {
			panic(DecomposeError{err})
		}
		lower, upper := bridge.Split(poly)
		d.logSplit(bridge, poly, lower, upper, depth)

		if bridge.HasSteiner {
			d.result.SteinerPoints = append(d.result.SteinerPoints, bridge.Steiner)
		}

		// Smaller half first. This only affects discovery order.
		if lower.Len() < upper.Len() {
			d.decompose(lower, depth+1)
			d.decompose(upper, depth+1)
		} else {
			d.decompose(upper, depth+1)
			d.decompose(lower, depth+1)
		}
		return
	}

	d.log.WithFields(logrus.Fields{
		"piece": dbg.Name(len(d.result.Polygons)),
		"size":  poly.Len(),
		"depth": depth,
	}).Debug("convex piece")
	d.result.Polygons = append(d.result.Polygons, poly)
}

func (d *decomposer) logSplit(bridge Bridge, poly, lower, upper Polygon, depth int) {
	fields := logrus.Fields{
		"reflex": bridge.Reflex,
		"size":   poly.Len(),
		"lower":  lower.Len(),
		"upper":  upper.Len(),
		"depth":  depth,
	}
	if bridge.HasSteiner {
		fields["case"] = "steiner"
		fields["lowerIndex"] = bridge.LowerIndex
		fields["upperIndex"] = bridge.UpperIndex
		fields["steiner"] = bridge.Steiner
	} else {
		fields["case"] = "vertex"
		fields["target"] = bridge.Target
	}
	d.log.WithFields(fields).Debug("split at reflex vertex")
}
