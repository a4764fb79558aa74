package cindex

import "errors"

// Sentinel errors for the cindex package. ErrBidirectionalMismatch
// signals an internal invariant violation: a programmer error, not a
// user-triggerable condition.
var (
	// ErrBidirectionalMismatch indicates index[a][b] and index[b][a]
	// point at different contractions, or only one side exists. Only
	// raised by CheckInvariant, which is not run on every mutation: the
	// lod driver calls it after each contraction when its debugChecks
	// constant is set, and tests call it directly.
	ErrBidirectionalMismatch = errors.New("cindex: bidirectional consistency violated")
)
