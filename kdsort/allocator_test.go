package kdsort

import (
	"math/rand/v2"
	"testing"
)

// countingAllocator allocates with make, as DefaultAllocator does, and tracks how many of its three
// resource classes are currently outstanding, so a test can assert the
// count returns to zero once Sort releases everything.
type countingAllocator struct {
	outstanding int
}

func (a *countingAllocator) AllocNodes(capacity int) ([]treeNode, error) {
	a.outstanding++
	return make([]treeNode, capacity), nil
}

func (a *countingAllocator) AllocQueue(capacity int) ([]int32, error) {
	a.outstanding++
	return make([]int32, capacity), nil
}

func (a *countingAllocator) AllocScratch(n int) ([]Point, error) {
	a.outstanding++
	return make([]Point, n), nil
}

func (a *countingAllocator) Release() {
	a.outstanding = 0
}

func TestSort_NoDeallocationLeak(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	bb := unitCube()
	pts := randomPointsIn(bb, 300, rnd)

	alloc := &countingAllocator{}
	if err := Sort(bb, pts, WithAllocator(alloc)); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if alloc.outstanding != 0 {
		t.Fatalf("outstanding allocations after Sort: got %d, want 0", alloc.outstanding)
	}
}

// failAtKthAllocator fails the k-th call across AllocNodes/AllocQueue/
// AllocScratch (in that order, matching the one-call-per-resource contract
// Sort relies on) and succeeds on every other call.
type failAtKthAllocator struct {
	k           int
	calls       int
	outstanding int
}

func (a *failAtKthAllocator) nextCall() (fail bool) {
	a.calls++
	return a.calls == a.k
}

func (a *failAtKthAllocator) AllocNodes(capacity int) ([]treeNode, error) {
	if a.nextCall() {
		return nil, ErrOutOfMemory
	}
	a.outstanding++
	return make([]treeNode, capacity), nil
}

func (a *failAtKthAllocator) AllocQueue(capacity int) ([]int32, error) {
	if a.nextCall() {
		return nil, ErrOutOfMemory
	}
	a.outstanding++
	return make([]int32, capacity), nil
}

func (a *failAtKthAllocator) AllocScratch(n int) ([]Point, error) {
	if a.nextCall() {
		return nil, ErrOutOfMemory
	}
	a.outstanding++
	return make([]Point, n), nil
}

func (a *failAtKthAllocator) Release() {
	a.outstanding = 0
}

// TestSort_AllocatorFailureInjection covers the boundary behavior: failing
// the k-th allocation call, for each of the 3 calls a non-empty sort makes
// (arena, queue, scratch), must surface ErrOutOfMemory with nothing left
// outstanding.
func TestSort_AllocatorFailureInjection(t *testing.T) {
	rnd := rand.New(rand.NewPCG(11, 12))
	bb := unitCube()

	for k := 1; k <= 3; k++ {
		pts := randomPointsIn(bb, 50, rnd)
		alloc := &failAtKthAllocator{k: k}
		err := Sort(bb, pts, WithAllocator(alloc))
		if err != ErrOutOfMemory {
			t.Fatalf("k=%d: got %v, want ErrOutOfMemory", k, err)
		}
		if alloc.outstanding != 0 {
			t.Fatalf("k=%d: outstanding allocations after failure: got %d, want 0", k, alloc.outstanding)
		}
	}
}
