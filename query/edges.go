package query

import "sort"

// Edge connects a source point index to a target point index, both from
// the index spaces of the slices a NearestEdges/RadiusEdges call was given.
type Edge struct {
	Source, Target int32
}

// UnionEdges merges one or more edge sets, removing duplicates, via the
// usual dedup-through-a-set-map strategy, operating on plain Edge values
// rather than a [2, numEdges] int32 tensor since nothing downstream here
// needs an accelerator-resident edge list.
func UnionEdges(edgeSets ...[]Edge) []Edge {
	seen := make(map[Edge]struct{})
	for _, edges := range edgeSets {
		for _, e := range edges {
			seen[e] = struct{}{}
		}
	}
	out := make([]Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	SortEdgesBySource(out)
	return out
}

// SortEdgesBySource sorts edges in place, primarily by Source and
// secondarily by Target.
func SortEdgesBySource(edges []Edge) {
	sort.Sort(edgesBySource(edges))
}

type edgesBySource []Edge

func (e edgesBySource) Len() int      { return len(e) }
func (e edgesBySource) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e edgesBySource) Less(i, j int) bool {
	if e[i].Source != e[j].Source {
		return e[i].Source < e[j].Source
	}
	return e[i].Target < e[j].Target
}
