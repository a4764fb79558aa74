package pqueue_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/surfelod/pqueue"
)

type testItem float64

func (t testItem) QueueError() float64 { return float64(t) }

func TestQueue_PopMin_Ascending(t *testing.T) {
	q := pqueue.New()
	q.Push(testItem(5))
	q.Push(testItem(1))
	q.Push(testItem(3))

	var got []float64
	for {
		item, ok := q.PopMin()
		if !ok {
			break
		}
		got = append(got, float64(item.(testItem)))
	}

	want := []float64{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestQueue_Invalidate_SkipsOnPop(t *testing.T) {
	q := pqueue.New()
	h1 := q.Push(testItem(1))
	q.Push(testItem(2))

	if err := q.Invalidate(h1); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after invalidation", q.Len())
	}

	item, ok := q.PopMin()
	if !ok {
		t.Fatalf("expected a valid item to remain")
	}
	if got := float64(item.(testItem)); got != 2 {
		t.Fatalf("PopMin() = %v, want 2 (the non-invalidated item)", got)
	}

	_, ok = q.PopMin()
	if ok {
		t.Fatalf("expected queue to be empty after popping the only valid item")
	}
}

func TestQueue_Invalidate_StaleHandle(t *testing.T) {
	q := pqueue.New()
	h := q.Push(testItem(1))

	if err := q.Invalidate(h); err != nil {
		t.Fatalf("first Invalidate: %v", err)
	}
	err := q.Invalidate(h)
	if !errors.Is(err, pqueue.ErrStaleHandle) {
		t.Fatalf("second Invalidate err = %v, want ErrStaleHandle", err)
	}
}

func TestQueue_Invalidate_AfterPop(t *testing.T) {
	q := pqueue.New()
	h := q.Push(testItem(1))
	if _, ok := q.PopMin(); !ok {
		t.Fatalf("expected PopMin to succeed")
	}
	if err := q.Invalidate(h); !errors.Is(err, pqueue.ErrStaleHandle) {
		t.Fatalf("Invalidate after pop err = %v, want ErrStaleHandle", err)
	}
}

func TestQueue_Replace_PreservesCardinalityAndReordersHeap(t *testing.T) {
	q := pqueue.New()
	h1 := q.Push(testItem(10))
	q.Push(testItem(20))

	if err := q.Replace(h1, testItem(1)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d after Replace, want 2 (cardinality preserved)", q.Len())
	}

	item, ok := q.PopMin()
	if !ok {
		t.Fatalf("expected PopMin to succeed")
	}
	if got := float64(item.(testItem)); got != 1 {
		t.Fatalf("PopMin() = %v, want 1 (the replaced, now-smallest item)", got)
	}
}

func TestQueue_Replace_StaleHandle(t *testing.T) {
	q := pqueue.New()
	h := q.Push(testItem(1))
	if err := q.Invalidate(h); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := q.Replace(h, testItem(2)); !errors.Is(err, pqueue.ErrStaleHandle) {
		t.Fatalf("Replace after invalidate err = %v, want ErrStaleHandle", err)
	}
}

func TestQueue_Len(t *testing.T) {
	q := pqueue.New()
	if q.Len() != 0 {
		t.Fatalf("new queue Len() = %d, want 0", q.Len())
	}
	q.Push(testItem(1))
	q.Push(testItem(2))
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
}
