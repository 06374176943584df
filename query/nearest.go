package query

import (
	"math"

	"github.com/briokit/briosort/kdsort"
)

// NearestResult is the outcome of a single NearestPoint call.
type NearestResult struct {
	// Index is the position in the slice originally passed to NewKDTree.
	Index int
	// Dist2 is the squared Euclidean distance to the query point.
	Dist2 float64
	// Descents counts how many tree nodes the search visited -- a measure
	// of query cost. It depends on the tree's shape, which depends only on
	// the indexed point set and not on the order of the points, so it does
	// not distinguish a BRIO-sorted array from another ordering of the same
	// points (see NeighborIndexGap for an order-sensitive metric).
	Descents int
}

// NearestPoint returns the point in tree closest to q, breaking ties by
// whichever the search visits first.
func NearestPoint(tree *KDTree, q kdsort.Point) NearestResult {
	best := &nearestState{dist2: math.MaxFloat64, index: -1}
	findNearest(tree, tree.Root, q, best)
	return NearestResult{Index: tree.Order[best.index], Dist2: best.dist2, Descents: best.descents}
}

type nearestState struct {
	index    int
	dist2    float64
	descents int
}

func findNearest(tree *KDTree, node *kdNode, q kdsort.Point, best *nearestState) {
	if node == nil {
		return
	}
	best.descents++

	if node.IsLeaf() {
		for i := node.StartIdx; i < node.EndIdx; i++ {
			d2 := dist2(q, tree.Points[i])
			if d2 < best.dist2 {
				best.dist2 = d2
				best.index = i
			}
		}
		return
	}

	var first, second *kdNode
	if q.Coord[node.SplitAxis] < node.SplitValue {
		first, second = node.Left, node.Right
	} else {
		first, second = node.Right, node.Left
	}
	findNearest(tree, first, q, best)

	distToSplit := q.Coord[node.SplitAxis] - node.SplitValue
	if distToSplit*distToSplit < best.dist2 {
		findNearest(tree, second, q, best)
	}
}

func dist2(a, b kdsort.Point) float64 {
	var sum float64
	for axis := 0; axis < kdsort.Dimension; axis++ {
		d := a.Coord[axis] - b.Coord[axis]
		sum += d * d
	}
	return sum
}

// NearestEdges connects each point in sources to its nearest point in tree:
// one edge per source point, the pair (source index, nearest target index).
// sourceIdx in the returned edges indexes into sources; targetIdx indexes
// into the slice originally passed to NewKDTree.
func NearestEdges(tree *KDTree, sources []kdsort.Point) []Edge {
	edges := make([]Edge, len(sources))
	for i, src := range sources {
		res := NearestPoint(tree, src)
		edges[i] = Edge{Source: int32(i), Target: int32(res.Index)}
	}
	return edges
}
