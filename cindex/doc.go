// Package cindex implements the contraction index: the bidirectional
// mapping SurfelId -> SurfelId -> *Contraction, narrowed from a
// generic map[string]map[string][]*Edge adjacency structure down to a
// single live contraction per neighbor pair.
//
// Index guarantees bidirectional consistency itself: for any live edge
// {a,b}, Get(a,b) and Get(b,a) always return the same *contraction.Contraction
// pointer. Callers never reach into a raw map; every mutation goes
// through Insert/DeleteAll so the invariant cannot be broken
// from outside the package.
package cindex
