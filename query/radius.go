package query

import "github.com/briokit/briosort/kdsort"

// RadiusQuery returns the indices (into the slice originally passed to
// NewKDTree) of every point within radius of center, inclusive.
func RadiusQuery(tree *KDTree, center kdsort.Point, radius float64) []int {
	var out []int
	radius2 := radius * radius
	radiusSearch(tree, tree.Root, center, radius, radius2, &out)
	return out
}

func radiusSearch(tree *KDTree, node *kdNode, center kdsort.Point, radius, radius2 float64, out *[]int) {
	if node == nil || !radiusIntersectsBox(center, node.Min, node.Max, radius) {
		return
	}

	if node.IsLeaf() {
		for i := node.StartIdx; i < node.EndIdx; i++ {
			if dist2(center, tree.Points[i]) <= radius2 {
				*out = append(*out, tree.Order[i])
			}
		}
		return
	}

	radiusSearch(tree, node.Left, center, radius, radius2, out)
	radiusSearch(tree, node.Right, center, radius, radius2, out)
}

// radiusIntersectsBox reports whether the sphere of the given radius around
// center can reach inside the axis-aligned box [min, max] -- the usual
// closest-point-on-box distance test, used to prune whole subtrees without
// visiting their points.
func radiusIntersectsBox(center kdsort.Point, min, max [kdsort.Dimension]float64, radius float64) bool {
	var closest kdsort.Point
	for axis := 0; axis < kdsort.Dimension; axis++ {
		c := center.Coord[axis]
		switch {
		case c < min[axis]:
			if min[axis]-c > radius {
				return false
			}
			closest.Coord[axis] = min[axis]
		case c > max[axis]:
			if c-max[axis] > radius {
				return false
			}
			closest.Coord[axis] = max[axis]
		default:
			closest.Coord[axis] = c
		}
	}
	return dist2(center, closest) <= radius*radius
}

// RadiusEdges connects every source point to every point in tree within
// radius.
func RadiusEdges(tree *KDTree, sources []kdsort.Point, radius float64) []Edge {
	var edges []Edge
	for i, src := range sources {
		for _, targetIdx := range RadiusQuery(tree, src, radius) {
			edges = append(edges, Edge{Source: int32(i), Target: int32(targetIdx)})
		}
	}
	return edges
}
