package cindex

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/surfelod/contraction"
	"github.com/katalvlaran/surfelod/surfel"
)

// Index is the bidirectional contraction index: conceptually
// SurfelId -> (SurfelId -> Contraction), with the guarantee that for
// any live edge {a,b}, Get(a,b) and Get(b,a) return the same
// *contraction.Contraction.
type Index struct {
	rows map[surfel.ID]map[surfel.ID]*contraction.Contraction
}

// New returns an empty Index.
func New() *Index {
	return &Index{rows: make(map[surfel.ID]map[surfel.ID]*contraction.Contraction)}
}

func (ix *Index) row(id surfel.ID) map[surfel.ID]*contraction.Contraction {
	r, ok := ix.rows[id]
	if !ok {
		r = make(map[surfel.ID]*contraction.Contraction)
		ix.rows[id] = r
	}
	return r
}

// Insert adds c under both of its edge's endpoints, so Get(a,b) and
// Get(b,a) both return c.
func (ix *Index) Insert(c *contraction.Contraction) {
	a, b := c.Edge.A, c.Edge.B
	ix.row(a)[b] = c
	ix.row(b)[a] = c
}

// Get returns the contraction joining a and b, if one is live.
func (ix *Index) Get(a, b surfel.ID) (*contraction.Contraction, bool) {
	r, ok := ix.rows[a]
	if !ok {
		return nil, false
	}
	c, ok := r[b]
	return c, ok
}

// Has reports whether a and b are currently joined by a contraction.
func (ix *Index) Has(a, b surfel.ID) bool {
	_, ok := ix.Get(a, b)
	return ok
}

// Neighbors returns a snapshot of every contraction currently touching
// id, ordered by ascending neighbor SurfelId so callers see the same
// order on every run. The returned slice is safe to range over while
// mutating the index (Insert/DeleteAll elsewhere), since it is a copy.
func (ix *Index) Neighbors(id surfel.ID) []*contraction.Contraction {
	r := ix.rows[id]
	out := make([]*contraction.Contraction, 0, len(r))
	for _, c := range r {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Edge.Other(id).Less(out[j].Edge.Other(id))
	})
	return out
}

// DeleteAll removes every contraction touching id: id's own row, and
// id's entry in each of its neighbors' rows. Used once an endpoint has
// been fully consumed by a merge and every live contraction touching it
// has already been re-keyed onto the new surfel id.
func (ix *Index) DeleteAll(id surfel.ID) {
	for neighbor := range ix.rows[id] {
		delete(ix.rows[neighbor], id)
	}
	delete(ix.rows, id)
}

// Len returns the number of distinct live contractions in the index
// (each counted once, not once per endpoint).
func (ix *Index) Len() int {
	count := 0
	seen := make(map[*contraction.Contraction]bool)
	for _, r := range ix.rows {
		for _, c := range r {
			if !seen[c] {
				seen[c] = true
				count++
			}
		}
	}
	return count
}

// CheckInvariant verifies bidirectional consistency: for every live
// (a,b), rows[a][b] and rows[b][a] must be the identical contraction
// instance. Returns ErrBidirectionalMismatch (wrapped with the
// offending SurfelIds) on the first violation found; meant for debug
// builds and tests rather than every mutation.
func (ix *Index) CheckInvariant() error {
	for a, r := range ix.rows {
		for b, c := range r {
			back, ok := ix.rows[b]
			if !ok {
				return fmt.Errorf("%w: %v has no row for partner %v", ErrBidirectionalMismatch, b, a)
			}
			c2, ok := back[a]
			if !ok {
				return fmt.Errorf("%w: %v->%v missing reverse entry", ErrBidirectionalMismatch, a, b)
			}
			if c2 != c {
				return fmt.Errorf("%w: %v->%v and %v->%v disagree on contraction identity", ErrBidirectionalMismatch, a, b, b, a)
			}
		}
	}
	return nil
}
