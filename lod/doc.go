// Package lod implements the pair-contraction surfel reduction driver:
// given several child nodes of surfels, it produces one parent node
// with a bounded surfel count by iteratively merging nearest-neighbor
// pairs in order of minimum quadric error.
//
// CreateLOD is the single entry point. It is synchronous,
// single-threaded, and touches no package-level state: all
// intermediate structures (per-surfel quadrics, the contraction index,
// the priority queue) are local to one call and discarded on return.
// Inputs are read through the surfel.Array interface and never mutated
// - the driver keeps its own copies of every input surfel and mutates
// those instead.
package lod
