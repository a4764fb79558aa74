package pqueue

import "container/heap"

// Item is anything pushable onto a Queue: it must expose an ascending
// sort key, the realized quadric error for a contraction.Contraction.
type Item interface {
	QueueError() float64
}

// Handle is an opaque reference to a pushed Item's queue slot. Zero
// value is never returned by Push, so a zero Handle reliably means
// "no handle yet" for callers that want a sentinel.
type Handle struct {
	id uint64
}

// slot is the heap-ordered element backing a pushed Item. Slots are
// never physically removed from the heap on invalidation; Invalidate
// just flips removed and drops the slot from the id index, and PopMin
// discards removed slots lazily as it pops them.
type slot struct {
	item    Item
	id      uint64
	removed bool
	pos     int // current index within the heap slice, kept live for Fix
}

// slotHeap implements container/heap.Interface over *slot, min-ordered
// by the wrapped item's QueueError(). Each slot tracks its own
// position so Replace can call heap.Fix after mutating an item in
// place, rather than pushing a new slot.
type slotHeap []*slot

func (h slotHeap) Len() int           { return len(h) }
func (h slotHeap) Less(i, j int) bool { return h[i].item.QueueError() < h[j].item.QueueError() }
func (h slotHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}
func (h *slotHeap) Push(x interface{}) {
	s := x.(*slot)
	s.pos = len(*h)
	*h = append(*h, s)
}
func (h *slotHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.pos = -1
	*h = old[:n-1]
	return s
}

// Queue is a min-heap priority queue over Item, ordered by
// QueueError() ascending, supporting O(1) invalidation via Handle and
// lazy-skip extraction.
type Queue struct {
	heap   slotHeap
	index  map[uint64]*slot
	nextID uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{index: make(map[uint64]*slot)}
}

// Len returns the number of live (non-invalidated, non-popped) items
// currently queued.
func (q *Queue) Len() int {
	return len(q.index)
}

// Push adds item to the queue and returns a Handle that can later be
// passed to Invalidate.
func (q *Queue) Push(item Item) Handle {
	q.nextID++
	s := &slot{item: item, id: q.nextID}
	heap.Push(&q.heap, s)
	q.index[s.id] = s
	return Handle{id: s.id}
}

// Invalidate marks the slot referenced by h empty. Returns
// ErrStaleHandle if h no longer refers to a live slot (already
// invalidated, or already popped by PopMin) - an internal invariant
// violation callers are not expected to trigger in normal operation.
func (q *Queue) Invalidate(h Handle) error {
	s, ok := q.index[h.id]
	if !ok {
		return ErrStaleHandle
	}
	s.removed = true
	delete(q.index, h.id)
	return nil
}

// Replace swaps the item held by the slot referenced by h for item,
// in place, and restores the heap invariant - rather than pushing a
// new slot and invalidating the old one. Used by the reduction
// driver's neighborhood rewiring, where an existing neighbor's queue
// slot is reused in place so queue cardinality never grows. Returns
// ErrStaleHandle if h no longer refers to a live slot.
func (q *Queue) Replace(h Handle, item Item) error {
	s, ok := q.index[h.id]
	if !ok {
		return ErrStaleHandle
	}
	s.item = item
	heap.Fix(&q.heap, s.pos)
	return nil
}

// PopMin removes and returns the minimum-error valid item in the
// queue. Returns (nil, false) once no valid item remains.
func (q *Queue) PopMin() (Item, bool) {
	for q.heap.Len() > 0 {
		s := heap.Pop(&q.heap).(*slot)
		if s.removed {
			continue
		}
		delete(q.index, s.id)
		return s.item, true
	}
	return nil, false
}
