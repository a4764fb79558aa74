// Package vecmath provides the 3D vector and symmetric 4x4 matrix
// primitives used by the surfel reduction pipeline: positions, normals,
// colors, and the quadric matrices that accumulate plane-distance error.
//
// Everything here is a value type. Operations that can be asked to
// process a degenerate input (a zero-length vector that must be
// normalized) return an error instead of silently yielding NaN/Inf, so
// callers higher up the pipeline can classify the failure per the
// numerical-degeneracy handling the reduction driver relies on.
//
// Complexity: every operation is O(1); there is no allocation beyond the
// value itself.
package vecmath
