package kdsort

import "github.com/gomlx/exceptions"

// BoundingBox is an axis-aligned box with Min[k] <= Max[k] for every axis k.
// The engine never widens a BoundingBox; it is supplied by the caller and
// only ever shrunk as the tree is split.
type BoundingBox struct {
	Min, Max [Dimension]float64
}

// Contains reports whether p lies within bb, inclusive of the boundary.
func (bb BoundingBox) Contains(p Point) bool {
	for axis := 0; axis < Dimension; axis++ {
		if p.Coord[axis] < bb.Min[axis] || p.Coord[axis] > bb.Max[axis] {
			return false
		}
	}
	return true
}

// Volume returns the product of the box's per-axis extents. A degenerate
// box (zero extent on any axis) has zero volume.
func (bb BoundingBox) Volume() float64 {
	v := 1.0
	for axis := 0; axis < Dimension; axis++ {
		v *= bb.Max[axis] - bb.Min[axis]
	}
	return v
}

// longestAxis returns the axis on which bb is longest, breaking ties by
// preferring the lower index (axis 0 over 1 over 2), per the cut-longest-edge
// rule's tie-break resolution.
func (bb BoundingBox) longestAxis() int {
	best := 0
	bestRange := bb.Max[0] - bb.Min[0]
	for axis := 1; axis < Dimension; axis++ {
		r := bb.Max[axis] - bb.Min[axis]
		if r > bestRange {
			bestRange = r
			best = axis
		}
	}
	return best
}

// BoundingBoxOf computes the smallest BoundingBox that contains every point
// in points. It panics if points is empty: there is no meaningful bounding
// box for zero points, and a caller able to pass points has a programmer
// error if it calls this with none.
func BoundingBoxOf(points []Point) BoundingBox {
	if len(points) == 0 {
		exceptions.Panicf("kdsort.BoundingBoxOf called with no points")
	}
	bb := BoundingBox{Min: points[0].Coord, Max: points[0].Coord}
	for _, p := range points[1:] {
		for axis := 0; axis < Dimension; axis++ {
			if p.Coord[axis] < bb.Min[axis] {
				bb.Min[axis] = p.Coord[axis]
			}
			if p.Coord[axis] > bb.Max[axis] {
				bb.Max[axis] = p.Coord[axis]
			}
		}
	}
	return bb
}
