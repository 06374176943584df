package kdsort

import "math/rand/v2"

// partitionAroundMedian rearranges points in place so that position
// len(points)/2 holds a point whose axis coordinate is the median of the
// range, every point to its left has a <= coordinate on that axis, and
// every point to its right has a >= coordinate. It returns that index.
//
// Implemented as randomized quickselect, stopping as soon as the middle
// position is pinned rather than fully sorting the range.
func partitionAroundMedian(points []Point, axis int, rnd *rand.Rand) int {
	n := len(points)
	switch n {
	case 0:
		return 0
	case 1:
		return 0
	}

	target := n / 2
	lo, hi := 0, n-1
	for lo < hi {
		p := lomutoPartition(points, lo, hi, axis, rnd)
		switch {
		case p == target:
			return p
		case target < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return lo
}

// lomutoPartition picks a uniformly random pivot in [lo, hi], partitions
// points[lo:hi+1] around it (elements with coord(axis) <= pivot's move
// left), and returns the pivot's final index.
func lomutoPartition(points []Point, lo, hi, axis int, rnd *rand.Rand) int {
	pivotIdx := lo + rnd.IntN(hi-lo+1)
	points[pivotIdx], points[hi] = points[hi], points[pivotIdx]
	pivotValue := points[hi].Coord[axis]

	i := lo
	for j := lo; j < hi; j++ {
		if points[j].Coord[axis] <= pivotValue {
			points[i], points[j] = points[j], points[i]
			i++
		}
	}
	points[i], points[hi] = points[hi], points[i]
	return i
}
