// Package pqueue implements the min-heap priority queue with lazy
// invalidation that the reduction driver pops contractions from.
//
// Push returns an opaque Handle that the caller stores alongside its
// item (contraction.Contraction.Handle). Invalidate(h) marks that slot
// empty in O(1) without touching the heap's shape; PopMin skips over
// invalidated slots lazily rather than eagerly repairing the heap,
// following the usual "push now, filter stale entries at pop time"
// idiom for lazy decrease-key over container/heap.
//
// Each Handle carries an id that Push never hands out twice, so a
// handle whose slot was already invalidated or popped is detected
// (ErrStaleHandle) rather than silently touching another entry.
package pqueue
