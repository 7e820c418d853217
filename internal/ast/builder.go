// Package ast defines the arena-backed syntax tree for Ripple. Every
// node family (expressions, statements, items, type specifications,
// patterns) lives in its own arena and is addressed by a typed id, so
// the tree is a graph over dense indices with no ownership cycles and
// no lifetime coupling between nodes and the stores that hold them.
package ast

// DefaultChunkSize is the arena chunk capacity used when the caller
// does not configure one.
const DefaultChunkSize = 1 << 8

// Builder aggregates the five node stores a parser populates.
type Builder struct {
	Exprs     *Exprs
	Stmts     *Stmts
	Items     *Items
	TypeSpecs *TypeSpecs
	Patterns  *Patterns
}

// NewBuilder creates all node stores with the given arena chunk size;
// 0 means DefaultChunkSize.
func NewBuilder(chunkSize int) *Builder {
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	return &Builder{
		Exprs:     NewExprs(chunkSize),
		Stmts:     NewStmts(chunkSize),
		Items:     NewItems(chunkSize),
		TypeSpecs: NewTypeSpecs(chunkSize),
		Patterns:  NewPatterns(chunkSize),
	}
}
