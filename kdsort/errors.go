package kdsort

import "github.com/pkg/errors"

// ErrOutOfMemory is returned when the Allocator refuses to hand out the node
// arena, the BFS queue, or the scratch buffer, or when the preallocated arena
// or queue runs out of slots during the sort. The sort is aborted
// and every allocation already made is released before the error surfaces.
var ErrOutOfMemory = errors.New("kdsort: allocation failed")

// ErrInternal marks a defensive bucket: the Partitioner failed to place a
// median, the tree builder produced an empty tree for a non-empty range, or
// a precondition panic (see exceptions.Panicf call sites) was caught at the
// Sort boundary. None of these should be reachable in practice; they exist
// so a caller can still treat every failure uniformly with errors.Is.
var ErrInternal = errors.New("kdsort: internal invariant violated")
