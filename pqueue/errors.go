package pqueue

import "errors"

// Sentinel errors for the pqueue package.
var (
	// ErrStaleHandle indicates Invalidate or Replace was called with a
	// Handle that no longer refers to a live slot (the slot was already
	// invalidated or popped). This is an internal
	// invariant violation: it means a caller held onto a handle past
	// its contraction's lifetime.
	ErrStaleHandle = errors.New("pqueue: handle is stale")
)
