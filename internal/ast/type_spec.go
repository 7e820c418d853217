package ast

import (
	"ripple/internal/arena"
	"ripple/internal/source"
)

// TypeSpecKind discriminates type specification nodes. Primitive types
// are deliberately not special-cased here: they parse as Named and are
// resolved later.
type TypeSpecKind uint8

const (
	TypeNamed TypeSpecKind = iota
	TypePointer
	TypeReference
	TypeOptional
	TypeArray
	TypeSlice
	TypeFn
	TypeParen
)

var typeSpecKindNames = [...]string{
	TypeNamed: "Named", TypePointer: "Pointer", TypeReference: "Reference",
	TypeOptional: "Optional", TypeArray: "Array", TypeSlice: "Slice",
	TypeFn: "Fn", TypeParen: "Paren",
}

func (k TypeSpecKind) String() string {
	if int(k) < len(typeSpecKindNames) {
		return typeSpecKindNames[k]
	}
	return "TypeSpec(?)"
}

// TypeSpec is one type specification node.
type TypeSpec struct {
	Kind    TypeSpecKind
	Span    source.Span
	Payload uint32
}

type TypeNamedData struct {
	Name source.Symbol
}

type TypeElemData struct {
	Elem TypeSpecID
}

// TypeArrayData is a fixed-size array: the size is an expression
// evaluated by a later pass.
type TypeArrayData struct {
	Size ExprID
	Elem TypeSpecID
}

type TypeFnData struct {
	Params []TypeSpecID
	Ret    TypeSpecID
}

// TypeSpecs manages allocation of type specification nodes.
type TypeSpecs struct {
	Arena  *arena.Arena[TypeSpec]
	Names  *arena.Arena[TypeNamedData]
	Elems  *arena.Arena[TypeElemData]
	Arrays *arena.Arena[TypeArrayData]
	Fns    *arena.Arena[TypeFnData]
}

func NewTypeSpecs(chunkSize int) *TypeSpecs {
	return &TypeSpecs{
		Arena:  arena.New[TypeSpec](chunkSize),
		Names:  arena.New[TypeNamedData](chunkSize),
		Elems:  arena.New[TypeElemData](chunkSize),
		Arrays: arena.New[TypeArrayData](chunkSize),
		Fns:    arena.New[TypeFnData](chunkSize),
	}
}

func (t *TypeSpecs) new(kind TypeSpecKind, span source.Span, payload uint32) TypeSpecID {
	return t.Arena.Alloc(TypeSpec{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	})
}

// Get returns the type specification node for id.
func (t *TypeSpecs) Get(id TypeSpecID) *TypeSpec {
	return t.Arena.Get(id)
}

// Len returns the number of allocated type specification nodes.
func (t *TypeSpecs) Len() int {
	return t.Arena.Len()
}

// NewNamed creates a named type reference.
func (t *TypeSpecs) NewNamed(span source.Span, name source.Symbol) TypeSpecID {
	payload := t.Names.Alloc(TypeNamedData{Name: name})
	return t.new(TypeNamed, span, payload.Index())
}

// NewPointer creates a pointer type.
func (t *TypeSpecs) NewPointer(span source.Span, elem TypeSpecID) TypeSpecID {
	payload := t.Elems.Alloc(TypeElemData{Elem: elem})
	return t.new(TypePointer, span, payload.Index())
}

// NewReference creates a reference type.
func (t *TypeSpecs) NewReference(span source.Span, elem TypeSpecID) TypeSpecID {
	payload := t.Elems.Alloc(TypeElemData{Elem: elem})
	return t.new(TypeReference, span, payload.Index())
}

// NewOptional creates an optional type.
func (t *TypeSpecs) NewOptional(span source.Span, elem TypeSpecID) TypeSpecID {
	payload := t.Elems.Alloc(TypeElemData{Elem: elem})
	return t.new(TypeOptional, span, payload.Index())
}

// NewSlice creates a slice type.
func (t *TypeSpecs) NewSlice(span source.Span, elem TypeSpecID) TypeSpecID {
	payload := t.Elems.Alloc(TypeElemData{Elem: elem})
	return t.new(TypeSlice, span, payload.Index())
}

// NewParen creates a parenthesized type.
func (t *TypeSpecs) NewParen(span source.Span, elem TypeSpecID) TypeSpecID {
	payload := t.Elems.Alloc(TypeElemData{Elem: elem})
	return t.new(TypeParen, span, payload.Index())
}

// NewArray creates a fixed-size array type.
func (t *TypeSpecs) NewArray(span source.Span, size ExprID, elem TypeSpecID) TypeSpecID {
	payload := t.Arrays.Alloc(TypeArrayData{Size: size, Elem: elem})
	return t.new(TypeArray, span, payload.Index())
}

// NewFn creates a function type.
func (t *TypeSpecs) NewFn(span source.Span, params []TypeSpecID, ret TypeSpecID) TypeSpecID {
	payload := t.Fns.Alloc(TypeFnData{Params: params, Ret: ret})
	return t.new(TypeFn, span, payload.Index())
}

// Named returns the name payload if id is a named type.
func (t *TypeSpecs) Named(id TypeSpecID) (*TypeNamedData, bool) {
	ts := t.Get(id)
	if ts.Kind != TypeNamed {
		return nil, false
	}
	return t.Names.At(ts.Payload), true
}

// Elem returns the element payload for pointer, reference, optional,
// slice and paren types.
func (t *TypeSpecs) Elem(id TypeSpecID) (*TypeElemData, bool) {
	ts := t.Get(id)
	switch ts.Kind {
	case TypePointer, TypeReference, TypeOptional, TypeSlice, TypeParen:
		return t.Elems.At(ts.Payload), true
	default:
		return nil, false
	}
}

// Array returns the array payload if id is an array type.
func (t *TypeSpecs) Array(id TypeSpecID) (*TypeArrayData, bool) {
	ts := t.Get(id)
	if ts.Kind != TypeArray {
		return nil, false
	}
	return t.Arrays.At(ts.Payload), true
}

// Fn returns the fn payload if id is a function type.
func (t *TypeSpecs) Fn(id TypeSpecID) (*TypeFnData, bool) {
	ts := t.Get(id)
	if ts.Kind != TypeFn {
		return nil, false
	}
	return t.Fns.At(ts.Payload), true
}
