package nnquery

import (
	"math"

	"github.com/katalvlaran/surfelod/surfel"
)

// Neighbor is one result of a Nearest query: a candidate SurfelId and
// its squared Euclidean distance to the query target.
type Neighbor struct {
	ID         surfel.ID
	SqDistance float64
}

// less orders Neighbors by ascending squared distance, breaking ties by
// SurfelId ordering so results are deterministic across runs.
func less(a, b Neighbor) bool {
	if a.SqDistance != b.SqDistance {
		return a.SqDistance < b.SqDistance
	}
	return a.ID.Less(b.ID)
}

// Nearest returns up to k surfels nearest to target's position, drawn
// from the union of all input node arrays (excluding target itself),
// sorted ascending by squared distance with SurfelId tie-break.
//
// Complexity: O(N*k), where N is the total number of candidate surfels
// across inputs: a single streaming scan maintains a bounded,
// insertion-sorted candidate list and the current worst accepted
// distance as an early-reject bound.
func Nearest(inputs []surfel.Array, target surfel.ID, k int) []Neighbor {
	if k <= 0 {
		return nil
	}
	center := inputs[target.Node].ReadSurfel(target.Index).Position

	candidates := make([]Neighbor, 0, k)
	maxDist := math.Inf(1)

	for nodeIdx, arr := range inputs {
		n := arr.Length()
		for idx := 0; idx < n; idx++ {
			id := surfel.ID{Node: nodeIdx, Index: idx}
			if id == target {
				continue
			}
			pos := arr.ReadSurfel(idx).Position
			d := center.DistanceSquared(pos)
			if len(candidates) == k && d > maxDist {
				continue // worse than every current candidate, skip the insertion-sort work entirely
			}

			cand := Neighbor{ID: id, SqDistance: d}
			if len(candidates) < k {
				candidates = insertSorted(candidates, cand)
			} else if less(cand, candidates[len(candidates)-1]) {
				candidates = candidates[:len(candidates)-1]
				candidates = insertSorted(candidates, cand)
			} else {
				continue
			}
			maxDist = candidates[len(candidates)-1].SqDistance
		}
	}

	return candidates
}

// insertSorted inserts cand into the already-sorted (by less) slice
// candidates, shifting larger elements up by one position.
func insertSorted(candidates []Neighbor, cand Neighbor) []Neighbor {
	candidates = append(candidates, cand)
	for i := len(candidates) - 1; i > 0 && less(candidates[i], candidates[i-1]); i-- {
		candidates[i], candidates[i-1] = candidates[i-1], candidates[i]
	}
	return candidates
}
