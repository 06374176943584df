package query

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briokit/briosort/kdsort"
)

func randomPoints(n int, seed uint64) []kdsort.Point {
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	pts := make([]kdsort.Point, n)
	for i := range pts {
		pts[i] = kdsort.Point{
			Coord:   [3]float64{rnd.Float64(), rnd.Float64(), rnd.Float64()},
			Payload: int64(i),
		}
	}
	return pts
}

func TestNewKDTree_RejectsEmpty(t *testing.T) {
	_, err := NewKDTree(nil, 4)
	require.Error(t, err)
}

func TestNewKDTree_PreservesOrderMapping(t *testing.T) {
	pts := randomPoints(200, 7)
	tree, err := NewKDTree(pts, 4)
	require.NoError(t, err)

	require.Len(t, tree.Order, len(pts))
	seen := make(map[int]bool)
	for i, orig := range tree.Order {
		require.False(t, seen[orig], "duplicate original index %d", orig)
		seen[orig] = true
		require.Equal(t, pts[orig].Coord, tree.Points[i].Coord)
	}
	require.Len(t, seen, len(pts))
}

func TestNewKDTree_CoincidentPoints(t *testing.T) {
	pts := make([]kdsort.Point, 10)
	for i := range pts {
		pts[i] = kdsort.Point{Coord: [3]float64{1, 2, 3}, Payload: int64(i)}
	}
	tree, err := NewKDTree(pts, 2)
	require.NoError(t, err)
	require.NotNil(t, tree.Root)
}
