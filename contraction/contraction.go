package contraction

import (
	"github.com/katalvlaran/surfelod/pqueue"
	"github.com/katalvlaran/surfelod/quadric"
	"github.com/katalvlaran/surfelod/surfel"
	"github.com/katalvlaran/surfelod/vecmath"
)

// Contraction is a proposed merge of an edge's two endpoints into one
// new surfel. It carries everything the reduction driver
// needs once it is popped: the edge it closes, the merged quadric to
// install under the new id, the realized error it was ranked by, the
// new surfel itself, and a back-link to its queue slot so it can be
// invalidated when superseded.
type Contraction struct {
	Edge      surfel.Edge
	Quadric   vecmath.Mat4
	Error     float64
	NewSurfel surfel.Surfel
	Handle    pqueue.Handle
}

// QueueError implements pqueue.Item, letting a *Contraction be pushed
// directly onto a pqueue.Queue ordered by its realized error.
func (c *Contraction) QueueError() float64 {
	return c.Error
}

// Build computes the merged surfel and its quadric for an edge whose
// endpoints currently hold surfels sa, sb and quadrics qa, qb:
//
//	position = (sa.pos + sb.pos) / 2
//	color    = (sa.color + sb.color) / 2
//	radius   = (sa.radius + sb.radius) / 2
//	normal   = normalize(sa.normal + sb.normal), falling back to sa.normal if zero
//	quadric  = qa + qb
//	error    = quadric_error(position, quadric)
func Build(edge surfel.Edge, sa, sb surfel.Surfel, qa, qb vecmath.Mat4) *Contraction {
	normal, err := sa.Normal.Add(sb.Normal).Normalize()
	if err != nil {
		normal = sa.Normal
	}

	merged := surfel.Surfel{
		Position: sa.Position.Add(sb.Position).Scale(0.5),
		Color:    sa.Color.Add(sb.Color).Scale(0.5),
		Radius:   (sa.Radius + sb.Radius) / 2,
		Normal:   normal,
	}

	mergedQuadric := qa.Add(qb)

	return &Contraction{
		Edge:      edge,
		Quadric:   mergedQuadric,
		Error:     quadric.Error(merged.Position, mergedQuadric),
		NewSurfel: merged,
	}
}
