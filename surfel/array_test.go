package surfel_test

import (
	"testing"

	"github.com/katalvlaran/surfelod/surfel"
)

func TestMemArray_LengthReadSetAppend(t *testing.T) {
	arr := surfel.NewMemArray([]surfel.Surfel{
		{Radius: 1},
		{Radius: 2},
	})
	if arr.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", arr.Length())
	}
	if got := arr.ReadSurfel(1).Radius; got != 2 {
		t.Fatalf("ReadSurfel(1).Radius = %v, want 2", got)
	}

	arr.Set(0, surfel.Surfel{Radius: 9})
	if got := arr.ReadSurfel(0).Radius; got != 9 {
		t.Fatalf("after Set, ReadSurfel(0).Radius = %v, want 9", got)
	}

	idx := arr.Append(surfel.Surfel{Radius: 3})
	if idx != 2 || arr.Length() != 3 {
		t.Fatalf("Append returned idx=%d len=%d, want idx=2 len=3", idx, arr.Length())
	}
}

func TestMemArray_WithCapacity(t *testing.T) {
	arr := surfel.NewMemArrayWithCapacity(4)
	if arr.Length() != 0 {
		t.Fatalf("new capacity-only array should be empty, got len=%d", arr.Length())
	}
	arr.Append(surfel.Surfel{Radius: 1})
	if arr.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", arr.Length())
	}
}
