package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionEdges_DedupsAndSorts(t *testing.T) {
	a := []Edge{{0, 1}, {1, 2}, {0, 1}}
	b := []Edge{{0, 2}, {1, 3}}

	got := UnionEdges(a, b)
	want := []Edge{{0, 1}, {0, 2}, {1, 2}, {1, 3}}
	require.Equal(t, want, got)
}

func TestUnionEdges_NoInputs(t *testing.T) {
	require.Empty(t, UnionEdges())
}

func TestSortEdgesBySource_SecondarySortByTarget(t *testing.T) {
	edges := []Edge{{2, 1}, {1, 5}, {1, 0}}
	SortEdgesBySource(edges)
	require.Equal(t, []Edge{{1, 0}, {1, 5}, {2, 1}}, edges)
}
