package lod

import "errors"

// Sentinel errors returned by CreateLOD. All three are precondition
// violations: CreateLOD fails immediately with one of these and
// produces no partial state.
var (
	// ErrEmptyInput indicates that inputs is empty, or every input node
	// it contains is itself empty (zero surfels across the whole call).
	ErrEmptyInput = errors.New("lod: inputs contain no surfels")

	// ErrTargetNotSmaller indicates that targetCount exceeds the total
	// input surfel count, so no contraction schedule can reach it.
	// targetCount == the input total is accepted (zero contractions run
	// and the input is copied through unchanged), so this fires only
	// for a strictly larger target.
	ErrTargetNotSmaller = errors.New("lod: target surfel count exceeds input total")

	// ErrZeroK indicates that k, the neighbor fan-out per surfel, was
	// zero or negative.
	ErrZeroK = errors.New("lod: k must be positive")
)
