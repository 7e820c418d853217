package ast

import (
	"ripple/internal/arena"
	"ripple/internal/source"
)

// StmtKind discriminates statement nodes.
type StmtKind uint8

const (
	// StmtVar is a val/var binding.
	StmtVar StmtKind = iota
	// StmtDefer defers an expression to scope exit.
	StmtDefer
	// StmtExpr is an expression in statement position.
	StmtExpr
)

var stmtKindNames = [...]string{
	StmtVar: "Var", StmtDefer: "Defer", StmtExpr: "Expr",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

// Stmt is one statement node. Ty is the type annotation slot for later
// passes.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
	Ty      TypeSpecID
}

// StmtVarData is a binding. Mutable distinguishes var from val. Init
// is NoExpr when the binding is declared `undefined` (explicitly
// uninitialized).
type StmtVarData struct {
	Mutable bool
	Name    source.Symbol
	Ty      TypeSpecID // NoTypeSpec when inferred
	Init    ExprID
}

// Undefined reports whether the binding was declared without an
// initializer.
func (d *StmtVarData) Undefined() bool {
	return !d.Init.Valid()
}

type StmtDeferData struct {
	Expr ExprID
}

type StmtExprData struct {
	Expr ExprID
}

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena  *arena.Arena[Stmt]
	Vars   *arena.Arena[StmtVarData]
	Defers *arena.Arena[StmtDeferData]
	Exprs  *arena.Arena[StmtExprData]
}

func NewStmts(chunkSize int) *Stmts {
	return &Stmts{
		Arena:  arena.New[Stmt](chunkSize),
		Vars:   arena.New[StmtVarData](chunkSize),
		Defers: arena.New[StmtDeferData](chunkSize),
		Exprs:  arena.New[StmtExprData](chunkSize),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return s.Arena.Alloc(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
		Ty:      NoTypeSpec(),
	})
}

// Get returns the statement node for id.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(id)
}

// Len returns the number of allocated statement nodes.
func (s *Stmts) Len() int {
	return s.Arena.Len()
}

// NewVar creates a binding statement; init is NoExpr for an
// `undefined` initializer, ty is NoTypeSpec when inferred.
func (s *Stmts) NewVar(span source.Span, mutable bool, name source.Symbol, ty TypeSpecID, init ExprID) StmtID {
	payload := s.Vars.Alloc(StmtVarData{Mutable: mutable, Name: name, Ty: ty, Init: init})
	return s.new(StmtVar, span, payload.Index())
}

// NewDefer creates a defer statement.
func (s *Stmts) NewDefer(span source.Span, expr ExprID) StmtID {
	payload := s.Defers.Alloc(StmtDeferData{Expr: expr})
	return s.new(StmtDefer, span, payload.Index())
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Alloc(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, payload.Index())
}

// Var returns the binding payload if id is a var statement.
func (s *Stmts) Var(id StmtID) (*StmtVarData, bool) {
	st := s.Get(id)
	if st.Kind != StmtVar {
		return nil, false
	}
	return s.Vars.At(st.Payload), true
}

// Defer returns the defer payload if id is a defer statement.
func (s *Stmts) Defer(id StmtID) (*StmtDeferData, bool) {
	st := s.Get(id)
	if st.Kind != StmtDefer {
		return nil, false
	}
	return s.Defers.At(st.Payload), true
}

// Expr returns the expression payload if id is an expression
// statement.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	st := s.Get(id)
	if st.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.At(st.Payload), true
}
