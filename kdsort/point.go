// Package kdsort implements a biased randomized insertion order (BRIO) for
// three-dimensional point sets, built from a cut-longest-edge kd-tree.
//
// Sorting a point slice with Sort permutes it in place so that a later
// incremental geometric construction (a Delaunay triangulation, for
// instance) that inserts the points one by one sees a sequence that is both
// spatially local -- nearby insertions tend to land close to recently
// inserted points -- and randomized enough to avoid adversarial worst
// cases. Building or maintaining that downstream triangulation is out of
// scope for this package.
package kdsort

import "fmt"

// Dimension is the number of spatial axes a Point carries. The engine is
// fixed to three dimensions and is not generalized over dimension count.
const Dimension = 3

// Point is a single record the engine permutes. Coord holds the point's
// three coordinates; Payload is opaque to the engine and is carried along
// on every swap so a caller can recover, e.g., the point's original index
// or an attached attribute after the sort.
type Point struct {
	Coord   [Dimension]float64
	Payload int64
}

// String renders a Point for debugging.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)#%d", p.Coord[0], p.Coord[1], p.Coord[2], p.Payload)
}
