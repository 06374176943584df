package kdsort

import "github.com/gomlx/exceptions"

// Sort permutes points in place into biased randomized insertion order
// (BRIO), derived from a cut-longest-edge kd-tree built over bbox.
//
// bbox must bound every point in points; Sort never widens it, and a point
// outside bbox is a precondition violation reported as ErrInternal. An empty
// points slice is a no-op that returns nil without allocating anything.
//
// On success every element of points still appears exactly once (the
// permutation property) and still lies inside bbox. On failure -- an
// allocation could not be satisfied, or an internal invariant was violated
// -- points is left holding the same elements in an unspecified order, and
// the returned error wraps ErrOutOfMemory or ErrInternal; check with
// errors.Is.
func Sort(bbox BoundingBox, points []Point, opts ...Option) error {
	var err error
	caught := exceptions.TryCatch[error](func() {
		err = doSort(bbox, points, opts)
	})
	if caught != nil {
		// A precondition panic (see exceptions.Panicf call sites in this
		// package) or a runtime panic from a misbehaving Allocator. Either
		// way it never reaches the caller as a panic.
		return ErrInternal
	}
	return err
}

func doSort(bbox BoundingBox, points []Point, opts []Option) error {
	if len(points) == 0 {
		return nil
	}

	cfg := newConfig(opts)
	if cfg.alloc == nil {
		exceptions.Panicf("kdsort: Sort given a nil Allocator")
	}
	if cfg.rnd == nil {
		exceptions.Panicf("kdsort: Sort given a nil random source")
	}
	for i, p := range points {
		if !bbox.Contains(p) {
			exceptions.Panicf("kdsort: point %d (%s) lies outside the supplied bounding box", i, p)
		}
	}
	n := len(points)

	defer cfg.alloc.Release()
	nodeBacking, err := cfg.alloc.AllocNodes(n)
	if err != nil {
		return ErrOutOfMemory
	}

	queueBacking, err := cfg.alloc.AllocQueue(maxLevelWidth(n))
	if err != nil {
		return ErrOutOfMemory
	}

	scratch, err := cfg.alloc.AllocScratch(n)
	if err != nil {
		return ErrOutOfMemory
	}

	arena := newNodeArena(nodeBacking)
	root, err := buildTree(bbox, points, 0, arena, cfg.rnd)
	if err != nil {
		return err
	}
	if root == noNode {
		return ErrInternal
	}

	tree := &builtTree{root: root, arena: arena, points: points}
	queue := newRingQueue(queueBacking)
	if err := emitLevelOrder(tree, queue, scratch); err != nil {
		return err
	}

	copy(points, scratch)
	return nil
}

// maxLevelWidth returns the capacity the BFS queue needs: the widest level
// of a balanced binary tree of n nodes never exceeds ceil(n/2) nodes in
// flight at once.
func maxLevelWidth(n int) int {
	return (n + 1) / 2
}
