package query

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briokit/briosort/kdsort"
)

func TestPrefixSpreads_FullPrefixIsWholeBox(t *testing.T) {
	pts := randomPoints(256, 61)
	bbox := kdsort.BoundingBoxOf(pts)

	spreads := PrefixSpreads(pts, bbox)
	require.NotEmpty(t, spreads)
	last := spreads[len(spreads)-1]
	require.Equal(t, 256, last.Length)
	require.InDelta(t, 1.0, last.Ratio, 1e-9)
}

func TestPrefixSpreads_AfterSortStaysWellSpread(t *testing.T) {
	pts := randomPoints(1024, 62)
	bbox := kdsort.BoundingBoxOf(pts)
	rnd := rand.New(rand.NewPCG(1, 2))
	require.NoError(t, kdsort.Sort(bbox, pts, kdsort.WithRand(rnd)))

	for _, spread := range PrefixSpreads(pts, bbox) {
		if spread.Length < 8 {
			continue
		}
		require.Greaterf(t, spread.Ratio, 0.02, "prefix length %d", spread.Length)
	}
}

func TestNeighborIndexGap_BRIOBeatsInterleavedAdversarial(t *testing.T) {
	const n = 512
	pts := make([]kdsort.Point, n)
	rnd := rand.New(rand.NewPCG(71, 72))
	for i := range pts {
		pts[i] = kdsort.Point{Coord: [3]float64{rnd.Float64(), rnd.Float64(), rnd.Float64()}, Payload: int64(i)}
	}
	bbox := kdsort.BoundingBoxOf(pts)

	// Adversarial order: interleave the two halves of the array so that
	// consecutive positions alternate between unrelated points.
	adversarial := make([]kdsort.Point, n)
	half := n / 2
	for i := 0; i < half; i++ {
		adversarial[2*i] = pts[i]
		adversarial[2*i+1] = pts[half+i]
	}

	sorted := append([]kdsort.Point(nil), pts...)
	require.NoError(t, kdsort.Sort(bbox, sorted))

	gapSorted, err := NeighborIndexGap(sorted, 4)
	require.NoError(t, err)
	gapAdversarial, err := NeighborIndexGap(adversarial, 4)
	require.NoError(t, err)

	require.Less(t, gapSorted, gapAdversarial)
}
