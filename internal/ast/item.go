package ast

import (
	"ripple/internal/arena"
	"ripple/internal/source"
)

// ItemKind discriminates top-level declarations.
type ItemKind uint8

const (
	ItemFn ItemKind = iota
	ItemStruct
	ItemEnum
	ItemUnion
	ItemImpl
	ItemConst
	ItemExtern
)

var itemKindNames = [...]string{
	ItemFn: "Fn", ItemStruct: "Struct", ItemEnum: "Enum",
	ItemUnion: "Union", ItemImpl: "Impl", ItemConst: "Const",
	ItemExtern: "Extern",
}

func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "Item(?)"
}

// Item is one top-level declaration node. Ty is the type annotation
// slot for later passes.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload uint32
	Ty      TypeSpecID
}

// Param is a function parameter.
type Param struct {
	Name source.Symbol
	Ty   TypeSpecID
}

// StructField is one named, typed struct field.
type StructField struct {
	Name source.Symbol
	Ty   TypeSpecID
}

// EnumVariant is one enum case; HasValue marks an explicit backing
// value.
type EnumVariant struct {
	Name     source.Symbol
	HasValue bool
	Value    int64
}

// UnionVariantKind discriminates tagged-union variant payloads.
type UnionVariantKind uint8

const (
	// UnionVariantBare carries no payload.
	UnionVariantBare UnionVariantKind = iota
	// UnionVariantTuple carries positional types.
	UnionVariantTuple
	// UnionVariantStruct carries named fields.
	UnionVariantStruct
)

// UnionVariant is one case of a tagged union.
type UnionVariant struct {
	Name   source.Symbol
	Kind   UnionVariantKind
	Tuple  []TypeSpecID  // UnionVariantTuple
	Fields []StructField // UnionVariantStruct
}

// FnSig is a function signature without a body, as found in extern
// blocks.
type FnSig struct {
	Name   source.Symbol
	Params []Param
	Ret    TypeSpecID // NoTypeSpec when omitted
}

type ItemFnData struct {
	Name   source.Symbol
	Params []Param
	Ret    TypeSpecID // NoTypeSpec when omitted
	Body   ExprID
}

type ItemStructData struct {
	Name   source.Symbol
	Fields []StructField
}

type ItemEnumData struct {
	Name     source.Symbol
	Backing  TypeSpecID // NoTypeSpec when defaulted
	Variants []EnumVariant
}

type ItemUnionData struct {
	Name     source.Symbol
	Variants []UnionVariant
}

type ItemImplData struct {
	SelfTy  TypeSpecID
	Methods []ItemID
}

type ItemConstData struct {
	Name source.Symbol
	Ty   TypeSpecID
	Expr ExprID
}

// ItemExternData is an extern block: the ABI string plus the foreign
// signatures it declares.
type ItemExternData struct {
	ABI   string
	Decls []FnSig
}

// Items manages allocation of top-level declaration nodes.
type Items struct {
	Arena   *arena.Arena[Item]
	Fns     *arena.Arena[ItemFnData]
	Structs *arena.Arena[ItemStructData]
	Enums   *arena.Arena[ItemEnumData]
	Unions  *arena.Arena[ItemUnionData]
	Impls   *arena.Arena[ItemImplData]
	Consts  *arena.Arena[ItemConstData]
	Externs *arena.Arena[ItemExternData]
}

func NewItems(chunkSize int) *Items {
	return &Items{
		Arena:   arena.New[Item](chunkSize),
		Fns:     arena.New[ItemFnData](chunkSize),
		Structs: arena.New[ItemStructData](chunkSize),
		Enums:   arena.New[ItemEnumData](chunkSize),
		Unions:  arena.New[ItemUnionData](chunkSize),
		Impls:   arena.New[ItemImplData](chunkSize),
		Consts:  arena.New[ItemConstData](chunkSize),
		Externs: arena.New[ItemExternData](chunkSize),
	}
}

func (it *Items) new(kind ItemKind, span source.Span, payload uint32) ItemID {
	return it.Arena.Alloc(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
		Ty:      NoTypeSpec(),
	})
}

// Get returns the item node for id.
func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(id)
}

// Len returns the number of allocated item nodes.
func (it *Items) Len() int {
	return it.Arena.Len()
}

// NewFn creates a function declaration; ret is NoTypeSpec when the
// return type is omitted.
func (it *Items) NewFn(span source.Span, name source.Symbol, params []Param, ret TypeSpecID, body ExprID) ItemID {
	payload := it.Fns.Alloc(ItemFnData{Name: name, Params: params, Ret: ret, Body: body})
	return it.new(ItemFn, span, payload.Index())
}

// NewStruct creates a struct declaration.
func (it *Items) NewStruct(span source.Span, name source.Symbol, fields []StructField) ItemID {
	payload := it.Structs.Alloc(ItemStructData{Name: name, Fields: fields})
	return it.new(ItemStruct, span, payload.Index())
}

// NewEnum creates an enum declaration; backing is NoTypeSpec when
// defaulted.
func (it *Items) NewEnum(span source.Span, name source.Symbol, backing TypeSpecID, variants []EnumVariant) ItemID {
	payload := it.Enums.Alloc(ItemEnumData{Name: name, Backing: backing, Variants: variants})
	return it.new(ItemEnum, span, payload.Index())
}

// NewUnion creates a tagged union declaration.
func (it *Items) NewUnion(span source.Span, name source.Symbol, variants []UnionVariant) ItemID {
	payload := it.Unions.Alloc(ItemUnionData{Name: name, Variants: variants})
	return it.new(ItemUnion, span, payload.Index())
}

// NewImpl creates an impl block; methods are ids of function items.
func (it *Items) NewImpl(span source.Span, selfTy TypeSpecID, methods []ItemID) ItemID {
	payload := it.Impls.Alloc(ItemImplData{SelfTy: selfTy, Methods: methods})
	return it.new(ItemImpl, span, payload.Index())
}

// NewConst creates a const declaration.
func (it *Items) NewConst(span source.Span, name source.Symbol, ty TypeSpecID, expr ExprID) ItemID {
	payload := it.Consts.Alloc(ItemConstData{Name: name, Ty: ty, Expr: expr})
	return it.new(ItemConst, span, payload.Index())
}

// NewExtern creates an extern block.
func (it *Items) NewExtern(span source.Span, abi string, decls []FnSig) ItemID {
	payload := it.Externs.Alloc(ItemExternData{ABI: abi, Decls: decls})
	return it.new(ItemExtern, span, payload.Index())
}

// Fn returns the fn payload if id is a function declaration.
func (it *Items) Fn(id ItemID) (*ItemFnData, bool) {
	item := it.Get(id)
	if item.Kind != ItemFn {
		return nil, false
	}
	return it.Fns.At(item.Payload), true
}

// Struct returns the struct payload if id is a struct declaration.
func (it *Items) Struct(id ItemID) (*ItemStructData, bool) {
	item := it.Get(id)
	if item.Kind != ItemStruct {
		return nil, false
	}
	return it.Structs.At(item.Payload), true
}

// Enum returns the enum payload if id is an enum declaration.
func (it *Items) Enum(id ItemID) (*ItemEnumData, bool) {
	item := it.Get(id)
	if item.Kind != ItemEnum {
		return nil, false
	}
	return it.Enums.At(item.Payload), true
}

// Union returns the union payload if id is a union declaration.
func (it *Items) Union(id ItemID) (*ItemUnionData, bool) {
	item := it.Get(id)
	if item.Kind != ItemUnion {
		return nil, false
	}
	return it.Unions.At(item.Payload), true
}

// Impl returns the impl payload if id is an impl block.
func (it *Items) Impl(id ItemID) (*ItemImplData, bool) {
	item := it.Get(id)
	if item.Kind != ItemImpl {
		return nil, false
	}
	return it.Impls.At(item.Payload), true
}

// Const returns the const payload if id is a const declaration.
func (it *Items) Const(id ItemID) (*ItemConstData, bool) {
	item := it.Get(id)
	if item.Kind != ItemConst {
		return nil, false
	}
	return it.Consts.At(item.Payload), true
}

// Extern returns the extern payload if id is an extern block.
func (it *Items) Extern(id ItemID) (*ItemExternData, bool) {
	item := it.Get(id)
	if item.Kind != ItemExtern {
		return nil, false
	}
	return it.Externs.At(item.Payload), true
}
