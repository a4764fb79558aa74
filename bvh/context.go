package bvh

// Context is an opaque handle to the surrounding BVH a caller is
// building LOD levels for. The reduction driver threads it through a
// create_lod call purely as context; it is never dereferenced by this
// module.
type Context interface {
	// NodeCount reports how many nodes the BVH a Context refers to
	// holds. Present only so real implementations have at least one
	// observable method; the reduction core never calls it.
	NodeCount() int
}

// None is the zero-value Context for callers that have no real BVH to
// thread through, e.g. unit tests exercising lod.CreateLOD directly.
type None struct{}

// NodeCount implements Context.
func (None) NodeCount() int { return 0 }
