package surfel

import "github.com/katalvlaran/surfelod/vecmath"

// Surfel is an oriented disk sample of a surface: a position, a unit
// normal, a color, and a radius.
//
// Invariant: a Surfel with Radius <= 0 is logically removed. The
// reduction driver never deletes entries from a node's backing slice
// mid-algorithm; it marks them removed via this sentinel and filters
// them out once, at compaction time.
type Surfel struct {
	Position vecmath.Vec3
	Normal   vecmath.Vec3
	Color    vecmath.Vec3
	Radius   float64
}

// Live reports whether s is still a candidate surfel, i.e. has not been
// consumed by a contraction.
func (s Surfel) Live() bool {
	return s.Radius > 0
}

// Edge is an unordered pair of distinct SurfelIds, canonicalized with
// the smaller ID first so that Edge{a,b} == Edge{b,a} regardless of
// construction order.
type Edge struct {
	A, B ID
}

// NewEdge builds the canonical Edge for the pair (p, q), ordering its
// endpoints so the smaller ID is always A. Returns ErrIdenticalEndpoints
// if p == q, since a contraction must join two distinct surfels.
func NewEdge(p, q ID) (Edge, error) {
	if p == q {
		return Edge{}, ErrIdenticalEndpoints
	}
	if q.Less(p) {
		p, q = q, p
	}
	return Edge{A: p, B: q}, nil
}

// Other returns the endpoint of e that is not id. Panics if id is
// neither endpoint; callers only ever invoke Other with an id they
// already know is one of e's endpoints (an internal invariant, not a
// user-facing precondition).
func (e Edge) Other(id ID) ID {
	switch id {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		panic("surfel: id is not an endpoint of edge")
	}
}
