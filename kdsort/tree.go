package kdsort

import "math/rand/v2"

// nodeRef addresses a slot in a nodeArena. noNode denotes an absent child
// or an empty tree.
type nodeRef int32

const noNode nodeRef = -1

// treeNode is one internal node of the cut-longest-edge kd-tree: a
// reference to the point that was the median of the sub-range it was built
// from, plus its two children. Nodes live in a flat arena addressed by
// index rather than as individually heap-allocated records joined by
// pointers, and carry no axis field -- nothing requires exposing it once
// the tree is consumed.
type treeNode struct {
	pointIdx    int32
	left, right nodeRef
}

// nodeArena is a bump allocator scoped to one Sort call: every node the
// tree builder creates is carved from one contiguous slice, sized exactly n
// up front, and the whole arena is released at once when the sort
// completes.
type nodeArena struct {
	nodes  []treeNode
	cursor nodeRef
}

func newNodeArena(backing []treeNode) *nodeArena {
	return &nodeArena{nodes: backing, cursor: 0}
}

func (a *nodeArena) alloc(pointIdx int) (nodeRef, error) {
	if int(a.cursor) >= len(a.nodes) {
		return noNode, ErrOutOfMemory
	}
	ref := a.cursor
	a.cursor++
	a.nodes[ref] = treeNode{pointIdx: int32(pointIdx), left: noNode, right: noNode}
	return ref, nil
}

func (a *nodeArena) get(ref nodeRef) *treeNode {
	return &a.nodes[ref]
}

// builtTree is the result of buildTree: a root reference into an arena, the
// arena itself, and the point slice the references index into.
type builtTree struct {
	root   nodeRef
	arena  *nodeArena
	points []Point
}

// buildTree recursively partitions points by repeatedly invoking the
// Partitioner, allocating one arena node per point. Axis choice at every
// node is the axis along which bbox is currently longest; see
// BoundingBox.longestAxis for the tie-break rule.
//
// base is the absolute offset of points within the full range being sorted,
// so that node.pointIdx always indexes the original slice passed to Sort.
func buildTree(bbox BoundingBox, points []Point, base int, arena *nodeArena, rnd *rand.Rand) (nodeRef, error) {
	if len(points) == 0 {
		return noNode, nil
	}
	if len(points) == 1 {
		return arena.alloc(base)
	}

	axis := bbox.longestAxis()
	median := partitionAroundMedian(points, axis, rnd)
	splitValue := points[median].Coord[axis]

	ref, err := arena.alloc(base + median)
	if err != nil {
		return noNode, err
	}

	leftBBox, rightBBox := bbox, bbox
	leftBBox.Max[axis] = splitValue
	rightBBox.Min[axis] = splitValue

	left, err := buildTree(leftBBox, points[:median], base, arena, rnd)
	if err != nil {
		return noNode, err
	}
	right, err := buildTree(rightBBox, points[median+1:], base+median+1, arena, rnd)
	if err != nil {
		return noNode, err
	}

	node := arena.get(ref)
	node.left = left
	node.right = right
	return ref, nil
}
