package source_test

import (
	"testing"

	"ripple/internal/source"
)

func TestInternIsIdempotent(t *testing.T) {
	in := source.NewInterner()

	a := in.Intern("ripple")
	b := in.Intern("ripple")
	if a != b {
		t.Fatalf("Intern returned %v then %v for the same string", a, b)
	}
	if in.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", in.Len())
	}
}

func TestInternAssignsDenseSymbols(t *testing.T) {
	in := source.NewInterner()

	words := []string{"fn", "main", "val", "greeting"}
	for i, w := range words {
		sym := in.Intern(w)
		if uint32(sym) != uint32(i) {
			t.Fatalf("Intern(%q) = %v, want %d", w, sym, i)
		}
	}
}

func TestResolveRoundTrip(t *testing.T) {
	in := source.NewInterner()

	sym := in.Intern("answer")
	if got := in.Resolve(sym); got != "answer" {
		t.Fatalf("Resolve(%v) = %q", sym, got)
	}
	if got, ok := in.Lookup(sym); !ok || got != "answer" {
		t.Fatalf("Lookup(%v) = %q, %v", sym, got, ok)
	}
}

func TestLookupUnknownSymbol(t *testing.T) {
	in := source.NewInterner()
	in.Intern("only")

	if _, ok := in.Lookup(source.Symbol(7)); ok {
		t.Fatal("Lookup of an unknown symbol must report !ok")
	}
	if in.Has(source.Symbol(7)) {
		t.Fatal("Has of an unknown symbol must be false")
	}
}

func TestResolvePanicsOnUnknown(t *testing.T) {
	in := source.NewInterner()

	defer func() {
		if recover() == nil {
			t.Fatal("Resolve of an unknown symbol should panic")
		}
	}()
	in.Resolve(source.Symbol(3))
}

// Interned strings must not alias the caller's mutable buffer.
func TestInternBytesCopies(t *testing.T) {
	in := source.NewInterner()

	buf := []byte("mutable")
	sym := in.InternBytes(buf)
	buf[0] = 'X'

	if got := in.Resolve(sym); got != "mutable" {
		t.Fatalf("Resolve(%v) = %q after buffer mutation", sym, got)
	}
}

func TestSnapshot(t *testing.T) {
	in := source.NewInterner()
	in.Intern("one")
	in.Intern("two")

	snap := in.Snapshot()
	if len(snap) != 2 || snap[0] != "one" || snap[1] != "two" {
		t.Fatalf("Snapshot() = %v", snap)
	}
}
