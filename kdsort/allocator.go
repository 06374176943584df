package kdsort

// Allocator grants the engine fallible memory for the three resource classes
// one Sort call needs: the node arena (one slot per point), the BFS queue
// (bounded by the tree's widest level), and the scratch buffer (exactly n
// points). A non-empty sort whose preconditions hold makes at most one
// AllocNodes, one AllocQueue, and one AllocScratch call, in that order,
// stopping at the first that fails, followed by exactly one Release on every
// exit path -- success, a returned error, or a recovered panic. A sort that
// fails a precondition check makes no Alloc* call and no Release call.
//
// An implementation may keep its own outstanding-allocation count so a
// leak-detecting test double can assert it returns to zero after Release;
// DefaultAllocator keeps none.
type Allocator interface {
	// AllocNodes reserves capacity tree-node slots for the arena.
	AllocNodes(capacity int) ([]treeNode, error)
	// AllocQueue reserves capacity int32 slots for the BFS ring buffer.
	AllocQueue(capacity int) ([]int32, error)
	// AllocScratch reserves n Point slots for the level-order scratch buffer.
	AllocScratch(n int) ([]Point, error)
	// Release frees everything this Allocator has handed out for the
	// current call. It is safe to call even if some Alloc* calls failed or
	// were never made.
	Release()
}

// DefaultAllocator is the Allocator used when Sort is not given one
// explicitly. It never fails and simply delegates to make().
type DefaultAllocator struct{}

// AllocNodes implements Allocator.
func (DefaultAllocator) AllocNodes(capacity int) ([]treeNode, error) {
	return make([]treeNode, capacity), nil
}

// AllocQueue implements Allocator.
func (DefaultAllocator) AllocQueue(capacity int) ([]int32, error) {
	return make([]int32, capacity), nil
}

// AllocScratch implements Allocator.
func (DefaultAllocator) AllocScratch(n int) ([]Point, error) {
	return make([]Point, n), nil
}

// Release implements Allocator. DefaultAllocator relies on the garbage
// collector, so there is nothing to do here.
func (DefaultAllocator) Release() {}
