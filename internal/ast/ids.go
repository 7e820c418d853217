package ast

import (
	"ripple/internal/arena"
)

// Typed handles for the five node families. An ExprID cannot be passed
// where a StmtID is expected even when the indices coincide; the arena
// tag makes the mix-up a compile error.
type (
	ExprID     = arena.ID[Expr]
	StmtID     = arena.ID[Stmt]
	ItemID     = arena.ID[Item]
	TypeSpecID = arena.ID[TypeSpec]
	PatternID  = arena.ID[Pattern]
)

// Sentinels for optional references inside nodes.
func NoExpr() ExprID         { return arena.None[Expr]() }
func NoStmt() StmtID         { return arena.None[Stmt]() }
func NoItem() ItemID         { return arena.None[Item]() }
func NoTypeSpec() TypeSpecID { return arena.None[TypeSpec]() }
func NoPattern() PatternID   { return arena.None[Pattern]() }
