package arena_test

import (
	"testing"

	"ripple/internal/arena"
)

type node struct {
	Value int
	Name  string
}

func TestAllocGetRoundTrip(t *testing.T) {
	a := arena.New[node](8)

	id := a.Alloc(node{Value: 42, Name: "answer"})
	got := a.Get(id)
	if got.Value != 42 || got.Name != "answer" {
		t.Fatalf("Get(%v) = %+v, want {42 answer}", id, *got)
	}
}

func TestIDsAreDense(t *testing.T) {
	a := arena.New[int](4)
	for i := 0; i < 10; i++ {
		id := a.Alloc(i * 100)
		if id.Index() != uint32(i) {
			t.Fatalf("Alloc #%d returned index %d", i, id.Index())
		}
	}
	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", a.Len())
	}
}

// Allocation must never move existing items, even when the current
// chunk fills up and a new one is started.
func TestPointerStabilityAcrossChunks(t *testing.T) {
	const chunkSize = 2
	a := arena.New[node](chunkSize)

	first := a.Alloc(node{Value: 1})
	ptr := a.Get(first)

	// Force several chunk transitions.
	for i := 2; i <= chunkSize*5; i++ {
		a.Alloc(node{Value: i})
	}

	if again := a.Get(first); again != ptr {
		t.Fatalf("Get(%v) moved: %p != %p", first, again, ptr)
	}
	if ptr.Value != 1 {
		t.Fatalf("first item corrupted: %+v", *ptr)
	}
}

func TestGetReturnsMutablePointer(t *testing.T) {
	a := arena.New[node](4)
	id := a.Alloc(node{Value: 1})

	a.Get(id).Value = 99

	if got := a.Get(id).Value; got != 99 {
		t.Fatalf("mutation lost: got %d, want 99", got)
	}
}

func TestChunkingCounts(t *testing.T) {
	const chunkSize = 2
	a := arena.New[int](chunkSize)

	for n := 1; n <= 7; n++ {
		a.Alloc(n)
		if a.Len() != n {
			t.Fatalf("after %d allocs Len() = %d", n, a.Len())
		}
	}
}

func TestIDsIteratesInOrder(t *testing.T) {
	a := arena.New[string](3)
	words := []string{"a", "b", "c", "d", "e"}
	for _, w := range words {
		a.Alloc(w)
	}

	var seen []string
	for id := range a.IDs() {
		seen = append(seen, *a.Get(id))
	}
	if len(seen) != len(words) {
		t.Fatalf("IDs() yielded %d items, want %d", len(seen), len(words))
	}
	for i, w := range words {
		if seen[i] != w {
			t.Fatalf("IDs()[%d] = %q, want %q", i, seen[i], w)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	a := arena.New[int](4)
	if !a.IsEmpty() {
		t.Fatal("fresh arena should be empty")
	}
	a.Alloc(1)
	if a.IsEmpty() {
		t.Fatal("arena with one item should not be empty")
	}
}

func TestNoneIsInvalid(t *testing.T) {
	id := arena.None[node]()
	if id.Valid() {
		t.Fatal("None() must not be Valid()")
	}
	if real := arena.FromIndex[node](0); !real.Valid() {
		t.Fatal("index 0 must be Valid()")
	}
}

func TestNewPanicsOnBadChunkSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(0) should panic")
		}
	}()
	arena.New[int](0)
}

func TestGetPanicsOutOfRange(t *testing.T) {
	a := arena.New[int](4)
	a.Alloc(1)

	defer func() {
		if recover() == nil {
			t.Fatal("Get past Len() should panic")
		}
	}()
	a.Get(arena.FromIndex[int](5))
}

func TestGetPanicsOnNone(t *testing.T) {
	a := arena.New[int](4)
	a.Alloc(1)

	defer func() {
		if recover() == nil {
			t.Fatal("Get(None) should panic")
		}
	}()
	a.Get(arena.None[int]())
}
