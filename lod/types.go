package lod

import "github.com/katalvlaran/surfelod/surfel"

// Result is what a successful CreateLOD call returns.
type Result struct {
	// Surfels holds the reduced surfel set: exactly the targetCount
	// CreateLOD was asked for when every requested contraction ran,
	// more if the priority queue ran dry first.
	Surfels []surfel.Surfel

	// ReductionError is the sum of the realized quadric error of every
	// contraction actually performed: an accumulator, not a last-write.
	ReductionError float64

	// DroppedContractions counts edges and contractions discarded
	// because a numerical degeneracy made their quadric unusable. A
	// nonzero count is not itself an error; it is surfaced so a caller
	// can decide whether the input geometry warrants investigation.
	DroppedContractions int
}
