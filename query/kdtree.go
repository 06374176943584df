// Package query stands in for the downstream consumer the BRIO permutation
// is built for: it answers nearest-point and radius queries over a point
// set, and reports the BFS prefix-spread metric that quantifies the
// locality payoff of a BRIO-ordered array, without building the Delaunay
// tetrahedralization itself.
//
// The query index here uses the same median-of-longest-axis split as
// kdsort's own tree and adds a bounding-box-pruned recursive search, which
// kdsort's tree does not have; it is static, never torn down mid-walk, and
// built directly over []kdsort.Point rather than a flat accelerator-resident
// tensor.
package query

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/briokit/briosort/kdsort"
)

// KDTree is a static spatial index over a fixed point set, used only to
// answer queries -- unlike kdsort's own tree, it is not torn down the moment
// it has served its purpose, and it never permutes the caller's original
// slice.
type KDTree struct {
	// Points is the tree's own copy of the indexed points, reordered during
	// construction; Order maps a position here back to the point's index in
	// the slice passed to NewKDTree.
	Points []kdsort.Point
	Order  []int
	Root   *kdNode
}

type kdNode struct {
	Min, Max         [kdsort.Dimension]float64
	StartIdx, EndIdx int
	Left, Right      *kdNode
	SplitAxis        int
	SplitValue       float64
}

// IsLeaf reports whether node has no children.
func (n *kdNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NewKDTree builds a static index over points, splitting on the axis with
// the largest range at each node (same cut-longest-edge rule kdsort uses to
// build its own transient tree) until a node holds minPointsPerLeaf points
// or fewer, or cannot be split because every point in it is coincident or
// every point below the median shares the median's split-axis coordinate.
//
// It is an error to call this with no points.
func NewKDTree(points []kdsort.Point, minPointsPerLeaf int) (*KDTree, error) {
	if len(points) == 0 {
		return nil, errors.New("query: NewKDTree called with no points")
	}
	if minPointsPerLeaf < 1 {
		return nil, errors.New("query: minPointsPerLeaf must be at least 1")
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	tree := &KDTree{
		Points: append([]kdsort.Point(nil), points...),
		Order:  order,
	}
	tree.Root = tree.buildNode(0, len(points), minPointsPerLeaf)
	return tree, nil
}

func (tree *KDTree) buildNode(start, end, minPointsPerLeaf int) *kdNode {
	minC, maxC := boundingBoxOf(tree.Points[start:end])
	node := &kdNode{Min: minC, Max: maxC, StartIdx: start, EndIdx: end}

	if end-start <= minPointsPerLeaf {
		return node
	}

	axis := 0
	best := maxC[0] - minC[0]
	for a := 1; a < kdsort.Dimension; a++ {
		if r := maxC[a] - minC[a]; r > best {
			best = r
			axis = a
		}
	}
	if best == 0 {
		return node // every point in this node is coincident
	}
	node.SplitAxis = axis

	region := tree.Points[start:end]
	regionOrder := tree.Order[start:end]
	idx := make([]int, len(region))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return region[idx[i]].Coord[axis] < region[idx[j]].Coord[axis]
	})
	sortedPts := make([]kdsort.Point, len(region))
	sortedOrder := make([]int, len(region))
	for dst, src := range idx {
		sortedPts[dst] = region[src]
		sortedOrder[dst] = regionOrder[src]
	}
	copy(region, sortedPts)
	copy(regionOrder, sortedOrder)

	median := start + (end-start)/2
	node.SplitValue = tree.Points[median].Coord[axis]
	for median > start && tree.Points[median-1].Coord[axis] >= node.SplitValue {
		median--
	}
	if median == start {
		return node // all points tie at the split value; stop here
	}

	node.Left = tree.buildNode(start, median, minPointsPerLeaf)
	node.Right = tree.buildNode(median, end, minPointsPerLeaf)
	return node
}

func boundingBoxOf(points []kdsort.Point) (min, max [kdsort.Dimension]float64) {
	min, max = points[0].Coord, points[0].Coord
	for _, p := range points[1:] {
		for axis := 0; axis < kdsort.Dimension; axis++ {
			if p.Coord[axis] < min[axis] {
				min[axis] = p.Coord[axis]
			}
			if p.Coord[axis] > max[axis] {
				max[axis] = p.Coord[axis]
			}
		}
	}
	return min, max
}
