package query

import "github.com/briokit/briosort/kdsort"

// PrefixSpread is the BFS prefix-spread measurement for a single prefix
// length: the bounding-box volume of points[:Length] as a fraction of the
// full bounding box's volume. A BRIO sort keeps Ratio at or above roughly
// 2^-d for a prefix of length 2^d, versus near zero for most prefixes of an
// arbitrary order.
type PrefixSpread struct {
	Length int
	Ratio  float64
}

// PrefixSpreads computes PrefixSpread for every prefix length 2^d <=
// len(points), using bbox as the reference full-volume box (typically the
// same box the points were sorted within).
func PrefixSpreads(points []kdsort.Point, bbox kdsort.BoundingBox) []PrefixSpread {
	full := bbox.Volume()
	var out []PrefixSpread
	for length := 1; length <= len(points); length *= 2 {
		prefixBBox := kdsort.BoundingBoxOf(points[:length])
		ratio := 0.0
		if full > 0 {
			ratio = prefixBBox.Volume() / full
		}
		out = append(out, PrefixSpread{Length: length, Ratio: ratio})
	}
	return out
}

// AverageDescents builds a KDTree over points and runs NearestPoint for
// every point in queries against it, returning the mean Descents across all
// queries -- a general measure of how many tree nodes a typical query has
// to visit. Because the tree's shape depends only on the point set and not
// the order points arrived in, this does not by itself distinguish a
// BRIO-ordered array from an arbitrary one; NeighborIndexGap does.
func AverageDescents(points []kdsort.Point, queries []kdsort.Point, minPointsPerLeaf int) (float64, error) {
	tree, err := NewKDTree(points, minPointsPerLeaf)
	if err != nil {
		return 0, err
	}
	if len(queries) == 0 {
		return 0, nil
	}
	total := 0
	for _, q := range queries {
		total += NearestPoint(tree, q).Descents
	}
	return float64(total) / float64(len(queries)), nil
}

// NeighborIndexGap is an order-sensitive locality-of-reference metric: for
// every point, it finds that point's nearest spatial neighbor and
// measures the distance between their positions in points. A small average
// gap means spatially close points also tend to be close in the array --
// exactly the property that keeps an incremental Delaunay insertion's
// point-location walk short, since the most recently inserted points are
// the ones the walk starts from. Unlike AverageDescents, this metric is
// order-sensitive: permuting points changes it even though the point set
// (and hence the KDTree built from it) is unchanged.
func NeighborIndexGap(points []kdsort.Point, minPointsPerLeaf int) (float64, error) {
	tree, err := NewKDTree(points, minPointsPerLeaf)
	if err != nil {
		return 0, err
	}
	if len(points) < 2 {
		return 0, nil
	}
	var total float64
	for i, p := range points {
		res := nearestExcluding(tree, p, i)
		gap := i - res
		if gap < 0 {
			gap = -gap
		}
		total += float64(gap)
	}
	return total / float64(len(points)), nil
}

// nearestExcluding finds the nearest point to q other than the point at
// original index self, by brute-force scan over the tree's indexed points.
// NeighborIndexGap is a diagnostic run once per sort, not a hot path, so the
// simplicity of excluding self by a direct scan over tree.Order outweighs
// the cost of a dedicated exclude-aware tree search.
func nearestExcluding(tree *KDTree, q kdsort.Point, self int) int {
	bestIdx, bestDist2 := -1, -1.0
	for i, orig := range tree.Order {
		if orig == self {
			continue
		}
		d2 := dist2(q, tree.Points[i])
		if bestIdx == -1 || d2 < bestDist2 {
			bestDist2 = d2
			bestIdx = orig
		}
	}
	return bestIdx
}
