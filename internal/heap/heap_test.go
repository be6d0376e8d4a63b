package heap

import (
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func TestExtractMinOrdersAscending(t *testing.T) {
	h := New[int](0, func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 2, 8, 0, 9} {
		h.Insert(v)
	}

	var got []int
	for h.Len() > 0 {
		got = append(got, h.ExtractMin())
	}

	want := []int{0, 1, 2, 4, 5, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLenTracksInsertsAndExtracts(t *testing.T) {
	h := New[int](0, func(a, b int) bool { return a < b })
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
	h.Insert(1)
	h.Insert(2)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	h.ExtractMin()
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
}

// TestExtractMinMatchesSort draws a random slice of ints, pushes them all
// into the heap, and checks extraction order matches sort.Ints.
func TestExtractMinMatchesSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-1000, 1000), 0, 200).Draw(t, "values")

		h := New[int](0, func(a, b int) bool { return a < b })
		for _, v := range values {
			h.Insert(v)
		}

		want := append([]int(nil), values...)
		sort.Ints(want)

		for i := 0; h.Len() > 0; i++ {
			got := h.ExtractMin()
			if got != want[i] {
				t.Fatalf("extract %d = %d, want %d", i, got, want[i])
			}
		}
	})
}
