package kdsort

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func pointsFromX(xs ...float64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{Coord: [Dimension]float64{x, 0, 0}}
	}
	return pts
}

func TestPartitionAroundMedian_Invariant(t *testing.T) {
	rnd := newTestRand()
	sizes := []int{0, 1, 2, 3, 4, 5, 10, 31, 100}
	for _, n := range sizes {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rnd.Float64() * 1000
		}
		pts := pointsFromX(xs...)
		median := partitionAroundMedian(pts, 0, rnd)

		if n == 0 {
			continue
		}
		want := n / 2
		if median != want {
			t.Fatalf("n=%d: got median index %d, want %d", n, median, want)
		}
		pivot := pts[median].Coord[0]
		for i := 0; i < median; i++ {
			if pts[i].Coord[0] > pivot {
				t.Errorf("n=%d: left element at %d (%g) > pivot %g", n, i, pts[i].Coord[0], pivot)
			}
		}
		for i := median + 1; i < n; i++ {
			if pts[i].Coord[0] < pivot {
				t.Errorf("n=%d: right element at %d (%g) < pivot %g", n, i, pts[i].Coord[0], pivot)
			}
		}
	}
}

func TestPartitionAroundMedian_SingleElement(t *testing.T) {
	pts := pointsFromX(42)
	rnd := newTestRand()
	if got := partitionAroundMedian(pts, 0, rnd); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if pts[0].Coord[0] != 42 {
		t.Fatalf("singleton element was modified: %v", pts[0])
	}
}

func TestPartitionAroundMedian_AllEqual(t *testing.T) {
	pts := pointsFromX(5, 5, 5, 5, 5)
	rnd := newTestRand()
	median := partitionAroundMedian(pts, 0, rnd)
	if median != 2 {
		t.Fatalf("got median index %d, want 2", median)
	}
	for _, p := range pts {
		if p.Coord[0] != 5 {
			t.Fatalf("coincident point mutated: %v", p)
		}
	}
}

func TestPartitionAroundMedian_PreservesMultiset(t *testing.T) {
	rnd := newTestRand()
	pts := pointsFromX(9, 1, 8, 2, 7, 3, 6, 4, 5)
	original := append([]Point(nil), pts...)
	partitionAroundMedian(pts, 0, rnd)

	seen := make(map[float64]int)
	for _, p := range original {
		seen[p.Coord[0]]++
	}
	for _, p := range pts {
		seen[p.Coord[0]]--
	}
	for x, count := range seen {
		if count != 0 {
			t.Fatalf("multiset not preserved for value %g: delta %d", x, count)
		}
	}
}
