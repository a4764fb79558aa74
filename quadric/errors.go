package quadric

import "errors"

// Sentinel errors for the quadric package. All indicate a numerical
// degeneracy: the caller should drop the offending contraction and
// continue, not treat these as fatal.
var (
	// ErrDegenerateEdge indicates the two positions are coincident, so
	// no edge direction can be derived.
	ErrDegenerateEdge = errors.New("quadric: edge direction is degenerate (coincident positions)")

	// ErrDegenerateNormal indicates the two normals sum to zero (exactly
	// opposing), so no tangent frame can be derived.
	ErrDegenerateNormal = errors.New("quadric: normal sum is degenerate (opposing normals)")

	// ErrDegenerateTangentFrame indicates the tangent/edge cross product
	// collapsed to zero, or the resulting plane normal could not be
	// rescaled (its components sum to zero).
	ErrDegenerateTangentFrame = errors.New("quadric: tangent frame is degenerate")

	// ErrNonFinite indicates the constructed quadric contains a NaN or
	// infinite entry.
	ErrNonFinite = errors.New("quadric: quadric has non-finite entries")
)
