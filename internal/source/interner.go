package source

import (
	"fmt"
	"slices"
)

// Symbol is a dense integer handle for an interned string. Equal strings
// always intern to the same Symbol, so comparing Symbols compares
// content.
type Symbol uint32

// Interner deduplicates strings into Symbols. Append-only; lives for the
// whole compilation.
type Interner struct {
	byID  []string
	index map[string]Symbol
}

func NewInterner() *Interner {
	return &Interner{
		byID:  make([]string, 0, 256),
		index: make(map[string]Symbol, 256),
	}
}

// Intern returns the Symbol for s, allocating the next dense id on first
// sight. Amortized O(1).
func (i *Interner) Intern(s string) Symbol {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Own copy, so the symbol table does not pin the caller's buffer.
	cpy := string([]byte(s))
	id := Symbol(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns b without requiring the caller to convert first.
func (i *Interner) InternBytes(b []byte) Symbol {
	return i.Intern(string(b))
}

// Lookup returns the string for sym, or false if sym was not issued by
// this interner.
func (i *Interner) Lookup(sym Symbol) (string, bool) {
	if !i.Has(sym) {
		return "", false
	}
	return i.byID[sym], true
}

// Resolve returns the string for sym. Passing a symbol from another
// interner is a programming error and panics.
func (i *Interner) Resolve(sym Symbol) string {
	s, ok := i.Lookup(sym)
	if !ok {
		panic(fmt.Sprintf("source: resolve of unknown symbol %d", sym))
	}
	return s
}

// Has reports whether sym was issued by this interner.
func (i *Interner) Has(sym Symbol) bool {
	return int(sym) < len(i.byID)
}

// Len returns the number of interned strings.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all interned strings in id order.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
