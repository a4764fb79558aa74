package lod

import (
	"sort"

	"github.com/katalvlaran/surfelod/bvh"
	"github.com/katalvlaran/surfelod/cindex"
	"github.com/katalvlaran/surfelod/contraction"
	"github.com/katalvlaran/surfelod/nnquery"
	"github.com/katalvlaran/surfelod/pqueue"
	"github.com/katalvlaran/surfelod/quadric"
	"github.com/katalvlaran/surfelod/surfel"
	"github.com/katalvlaran/surfelod/vecmath"
)

// debugChecks gates the cindex bidirectional-invariant assertion run
// after every contraction. A desync there is a programmer error, not a
// runtime fault, so it's caught by a cheap debug-only check rather than
// surfaced to callers. The node counts this module targets keep the
// check affordable to leave on.
const debugChecks = true

// CreateLOD reduces the fan-in of inputs down to targetCount surfels by
// repeatedly contracting the minimum-quadric-error nearest-neighbor
// pair. If the priority queue runs dry first, the surfels still live at
// that point are returned, which is more than targetCount.
//
// Each input surfel is assigned up to k nearest neighbors (nnquery.Nearest)
// and an accumulated quadric; every candidate pair is queued as a
// contraction.Contraction ordered by realized error; the driver pops the
// minimum repeatedly, replaces both endpoints with one merged surfel
// under a fresh surfel.ID, and rewires the neighborhood onto the new id
// before continuing. bvhCtx is threaded through untouched (bvh.Context
// is never queried by this package); pass bvh.None{} if the caller has
// no real BVH handy.
//
// Preconditions, checked in order, fail fast with no partial state:
//
//   - inputs must contain at least one surfel across all nodes combined
//     (ErrEmptyInput).
//   - k must be positive (ErrZeroK).
//   - targetCount must not exceed the total input surfel count
//     (ErrTargetNotSmaller). targetCount equal to the total is accepted
//     and degenerates to zero contractions.
//
// Inputs are read through surfel.Array and never mutated; CreateLOD
// keeps its own copies and merges those.
func CreateLOD(inputs []surfel.Array, targetCount, k int, bvhCtx bvh.Context, opts ...Option) (Result, error) {
	total := 0
	for _, arr := range inputs {
		total += arr.Length()
	}
	if total == 0 {
		return Result{}, ErrEmptyInput
	}
	if k <= 0 {
		return Result{}, ErrZeroK
	}
	if targetCount > total {
		return Result{}, ErrTargetNotSmaller
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		inputs:      inputs,
		k:           k,
		targetCount: targetCount,
		total:       total,
		logger:      cfg.Logger,
		bvhCtx:      bvhCtx,
	}

	r.init()
	r.accumulateQuadrics()
	r.buildInitialContractions()
	r.run()

	return r.compact(), nil
}

// runner holds the mutable state of a single CreateLOD call. Nothing
// here outlives the call; CreateLOD constructs a fresh runner every
// time, so concurrent calls never share state.
type runner struct {
	inputs      []surfel.Array
	k           int
	targetCount int
	total       int
	logger      Logger
	bvhCtx      bvh.Context

	// nodeSurfels holds one slice per input node plus a final staging
	// slice (index outputNode) that merged surfels are appended to.
	// These are private copies; r.inputs is never written through.
	nodeSurfels [][]surfel.Surfel
	outputNode  int

	quadrics map[surfel.ID]vecmath.Mat4
	edges    map[surfel.Edge]struct{}
	index    *cindex.Index
	queue    *pqueue.Queue

	reductionError float64
	dropped        int
}

// init copies every input surfel into private storage and prepares the
// empty output staging node, the quadric map, the candidate edge set,
// the contraction index, and the priority queue.
func (r *runner) init() {
	r.outputNode = len(r.inputs)
	r.nodeSurfels = make([][]surfel.Surfel, len(r.inputs)+1)
	for i, arr := range r.inputs {
		n := arr.Length()
		cp := make([]surfel.Surfel, n)
		for j := 0; j < n; j++ {
			cp[j] = arr.ReadSurfel(j)
		}
		r.nodeSurfels[i] = cp
	}

	r.quadrics = make(map[surfel.ID]vecmath.Mat4, r.total)
	r.edges = make(map[surfel.Edge]struct{})
	r.index = cindex.New()
	r.queue = pqueue.New()

	r.logger.Infof("copied %d surfels across %d input nodes", r.total, len(r.inputs))
}

// accumulateQuadrics assigns each surfel its k nearest neighbors and
// sums the per-edge quadric contribution of every neighbor into that
// surfel's own accumulator, collecting the deduplicated set of
// candidate edges along the way. A neighbor pair whose edge quadric is
// numerically degenerate contributes nothing and is counted in
// Result.DroppedContractions.
func (r *runner) accumulateQuadrics() {
	for nodeIdx, arr := range r.inputs {
		n := arr.Length()
		for idx := 0; idx < n; idx++ {
			curr := surfel.ID{Node: nodeIdx, Index: idx}
			currSurfel := r.nodeSurfels[nodeIdx][idx]

			accum := vecmath.ZeroMat4()
			for _, nb := range nnquery.Nearest(r.inputs, curr, r.k) {
				edge, err := surfel.NewEdge(curr, nb.ID)
				if err != nil {
					continue // nnquery never returns curr itself
				}
				r.edges[edge] = struct{}{}

				nbSurfel := r.inputs[nb.ID.Node].ReadSurfel(nb.ID.Index)
				q, err := quadric.Build(currSurfel.Position, nbSurfel.Position, currSurfel.Normal, nbSurfel.Normal)
				if err != nil {
					r.dropped++
					r.logger.Warnf("degenerate edge quadric %v-%v: %v", curr, nb.ID, err)
					continue
				}
				accum = accum.Add(q)
			}
			r.quadrics[curr] = accum
		}
	}
	r.logger.Infof("accumulated quadrics for %d surfels across %d candidate edges", r.total, len(r.edges))
}

// buildInitialContractions creates and queues one contraction.Contraction
// per candidate edge, in a fixed (sorted-by-endpoint) order so that two
// runs over identical input produce an identical initial heap layout and
// therefore identical output. A contraction whose merged quadric is
// non-finite is dropped rather than queued.
func (r *runner) buildInitialContractions() {
	edges := make([]surfel.Edge, 0, len(r.edges))
	for e := range r.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A.Less(edges[j].A)
		}
		return edges[i].B.Less(edges[j].B)
	})

	for _, e := range edges {
		c := contraction.Build(e, r.surfelAt(e.A), r.surfelAt(e.B), r.quadrics[e.A], r.quadrics[e.B])
		if !c.Quadric.IsFinite() {
			r.dropped++
			continue
		}
		c.Handle = r.queue.Push(c)
		r.index.Insert(c)
	}
	r.logger.Infof("%d initial contractions queued", r.queue.Len())
}

// run pops the minimum-error contraction total-targetCount times,
// applying each, and stops early if the queue runs dry first.
func (r *runner) run() {
	iterations := r.total - r.targetCount
	for i := 0; i < iterations; i++ {
		item, ok := r.queue.PopMin()
		if !ok {
			r.logger.Warnf("queue exhausted after %d of %d requested contractions", i, iterations)
			break
		}
		r.contract(item.(*contraction.Contraction))
	}
}

// contract applies one popped contraction: it stages the merged surfel
// under a fresh id, marks both endpoints removed, installs the merged
// quadric, rewires every surviving neighbor of either endpoint onto the
// new id, and finally drops the now-fully-consumed index rows for the
// two endpoints.
func (r *runner) contract(c *contraction.Contraction) {
	a, b := c.Edge.A, c.Edge.B
	newID := surfel.ID{Node: r.outputNode, Index: len(r.nodeSurfels[r.outputNode])}
	r.nodeSurfels[r.outputNode] = append(r.nodeSurfels[r.outputNode], c.NewSurfel)

	removedA := r.surfelAt(a)
	removedA.Radius = -1
	r.setSurfel(a, removedA)

	removedB := r.surfelAt(b)
	removedB.Radius = -1
	r.setSurfel(b, removedB)

	r.quadrics[newID] = c.Quadric
	delete(r.quadrics, a)
	delete(r.quadrics, b)

	r.rewire(a, newID, b)
	r.rewire(b, newID, a)

	r.index.DeleteAll(a)
	r.index.DeleteAll(b)

	r.reductionError += c.Error

	if debugChecks {
		if err := r.index.CheckInvariant(); err != nil {
			panic(err)
		}
	}
}

// rewire re-keys every live contraction touching old (except the one
// joining old to skip, the edge just consumed) onto newID. If another
// endpoint's pass already adopted the same neighbor first, this pass's
// proposal is discarded and its queue slot invalidated instead (the
// neighbor formed via the first endpoint wins). Otherwise the
// neighbor's existing queue slot is reused in place via
// pqueue.Queue.Replace, so queue cardinality never grows across a
// rewire.
func (r *runner) rewire(old, newID, skip surfel.ID) {
	for _, nbc := range r.index.Neighbors(old) {
		other := nbc.Edge.Other(old)
		if other == skip {
			continue
		}

		if r.index.Has(newID, other) {
			if err := r.queue.Invalidate(nbc.Handle); err != nil {
				panic(err)
			}
			continue
		}

		edge, err := surfel.NewEdge(newID, other)
		if err != nil {
			panic(err)
		}

		var sa, sb surfel.Surfel
		var qa, qb vecmath.Mat4
		if edge.A == newID {
			sa, qa = r.surfelAt(newID), r.quadrics[newID]
			sb, qb = r.surfelAt(other), r.quadrics[other]
		} else {
			sa, qa = r.surfelAt(other), r.quadrics[other]
			sb, qb = r.surfelAt(newID), r.quadrics[newID]
		}

		nc := contraction.Build(edge, sa, sb, qa, qb)
		if !nc.Quadric.IsFinite() {
			r.dropped++
			if err := r.queue.Invalidate(nbc.Handle); err != nil {
				panic(err)
			}
			continue
		}

		nc.Handle = nbc.Handle
		if err := r.queue.Replace(nbc.Handle, nc); err != nil {
			panic(err)
		}
		r.index.Insert(nc)
	}
}

// surfelAt returns the current (possibly merged-output) surfel at id.
func (r *runner) surfelAt(id surfel.ID) surfel.Surfel {
	return r.nodeSurfels[id.Node][id.Index]
}

// setSurfel overwrites the surfel at id.
func (r *runner) setSurfel(id surfel.ID, s surfel.Surfel) {
	r.nodeSurfels[id.Node][id.Index] = s
}

// compact gathers every surviving (Live) surfel across all node slices,
// input and output alike, into the final Result.
func (r *runner) compact() Result {
	out := make([]surfel.Surfel, 0, r.targetCount)
	for _, node := range r.nodeSurfels {
		for _, s := range node {
			if s.Live() {
				out = append(out, s)
			}
		}
	}
	r.logger.Infof("compacted %d live surfels (%d degenerate contractions dropped)", len(out), r.dropped)
	return Result{
		Surfels:             out,
		ReductionError:      r.reductionError,
		DroppedContractions: r.dropped,
	}
}
