// Package pvs is the potentially-visible-set collaborator carried over
// from the surrounding LOD pipeline: a regular view-cell grid, each
// cell holding precomputed per-(model,node) visibility, and a Database
// that resolves a viewer position to a cell and answers visibility
// queries against it.
//
// This package is never imported by lod.CreateLOD - the reduction core
// has no visibility concept. It exists as the sibling collaborator a
// caller wiring this module into a full LOD pipeline would also need,
// the way the source repository ships pvs_database alongside its
// reduction pass rather than folding the two together.
package pvs
