// Package arena provides a chunked, append-only store for syntax tree
// nodes, addressed by copyable type-tagged handles instead of native
// references. Passes can hold any number of handles while the arena
// grows; a handle stays valid for the arena's lifetime and never couples
// the holder to the arena's borrow state.
package arena

import (
	"fmt"
	"iter"

	"fortio.org/safecast"
)

const noIndex = ^uint32(0)

// ID is a dense handle into an Arena[T]. The type parameter is a
// compile-time tag only: an ID[Expr] and an ID[Stmt] are different types
// even when numerically equal. The zero value is the id of the first
// allocation; use None for "no node".
type ID[T any] struct {
	idx uint32
}

// None returns the invalid sentinel id, used for optional references.
func None[T any]() ID[T] {
	return ID[T]{idx: noIndex}
}

// FromIndex rebuilds an id from a raw index, for callers that store
// indices across an untyped boundary (payload slots, serialized caches).
func FromIndex[T any](idx uint32) ID[T] {
	return ID[T]{idx: idx}
}

// Valid reports whether the id refers to a node at all.
func (id ID[T]) Valid() bool {
	return id.idx != noIndex
}

// Index returns the raw allocation index.
func (id ID[T]) Index() uint32 {
	return id.idx
}

func (id ID[T]) String() string {
	if !id.Valid() {
		return "none"
	}
	return fmt.Sprintf("#%d", id.idx)
}

// Arena stores values of T in fixed-capacity chunks. Sealed chunks are
// never resized or moved, so element addresses are stable for the
// arena's lifetime; only the chunk list grows. Allocation order assigns
// ids 0, 1, 2, ...
//
// Not safe for concurrent mutation: a single pass owns the arena at a
// time.
type Arena[T any] struct {
	chunks    [][]T
	chunk     []T
	chunkSize int
}

// New creates an arena with the given chunk capacity. chunkSize must be
// at least 1; anything else is a configuration bug and panics.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize < 1 {
		panic(fmt.Sprintf("arena: chunk size must be >= 1, got %d", chunkSize))
	}
	return &Arena[T]{
		chunks:    nil,
		chunk:     make([]T, 0, chunkSize),
		chunkSize: chunkSize,
	}
}

// Alloc appends item and returns its id, equal to the pre-insertion
// Len(). When the current chunk fills up it is sealed and a fresh one
// started, so no previously returned element address ever moves.
func (a *Arena[T]) Alloc(item T) ID[T] {
	idx, err := safecast.Conv[uint32](a.Len())
	if err != nil {
		panic(fmt.Errorf("arena: id overflow: %w", err))
	}
	a.chunk = append(a.chunk, item)

	if len(a.chunk) >= a.chunkSize {
		a.chunks = append(a.chunks, a.chunk)
		a.chunk = make([]T, 0, a.chunkSize)
	}
	return ID[T]{idx: idx}
}

// Get resolves id to the stored value. The returned pointer is valid for
// the arena's lifetime and may be used to mutate the value in place.
// Ids outside [0, Len) are a programming error and panic.
func (a *Arena[T]) Get(id ID[T]) *T {
	idx := int(id.idx)
	if !id.Valid() || idx >= a.Len() {
		panic(fmt.Sprintf("arena: id %s out of range (len %d)", id, a.Len()))
	}
	chunkID := idx / a.chunkSize
	offset := idx % a.chunkSize
	if chunkID < len(a.chunks) {
		return &a.chunks[chunkID][offset]
	}
	return &a.chunk[offset]
}

// At resolves a raw index, for payload slots that store indices untyped.
func (a *Arena[T]) At(idx uint32) *T {
	return a.Get(ID[T]{idx: idx})
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() int {
	return len(a.chunks)*a.chunkSize + len(a.chunk)
}

func (a *Arena[T]) IsEmpty() bool {
	return a.Len() == 0
}

// IDs yields every id from 0 to Len()-1 in allocation order, with Len
// captured at the call. The sequence is restartable and does not read
// the arena contents, so it can be held across further allocations and
// iterated later.
func (a *Arena[T]) IDs() iter.Seq[ID[T]] {
	n := a.Len()
	return func(yield func(ID[T]) bool) {
		for i := range n {
			if !yield(ID[T]{idx: uint32(i)}) {
				return
			}
		}
	}
}
