package ast

import (
	"ripple/internal/source"
)

// Payload structs for expression kinds. Cross-references are always
// typed ids, never pointers, so nodes can be copied and the arenas can
// grow freely.

type ExprLiteralData struct {
	Value Literal
}

type ExprIdentData struct {
	Name source.Symbol
}

type ExprParenData struct {
	Inner ExprID
}

// ExprBlockData is a statement sequence with an optional trailing
// yield expression giving the block its value.
type ExprBlockData struct {
	Stmts []StmtID
	Yield ExprID // NoExpr when the block has no value
}

type ExprIfData struct {
	Cond ExprID
	Then ExprID
	Else ExprID // NoExpr when absent
}

// MatchCase pairs a pattern with its arm body.
type MatchCase struct {
	Pattern PatternID
	Body    ExprID
}

type ExprMatchData struct {
	Target ExprID
	Cases  []MatchCase
}

type ExprLoopData struct {
	Body ExprID
}

type ExprWhileData struct {
	Cond ExprID
	Body ExprID
	Else ExprID // NoExpr when absent
}

type ExprForData struct {
	Binding  source.Symbol
	Iterable ExprID
	Body     ExprID
	Else     ExprID // NoExpr when absent
}

type ExprReturnData struct {
	Value ExprID // NoExpr for a bare return
}

type ExprBreakData struct {
	Value ExprID // NoExpr for a bare break
}

type ExprBinaryData struct {
	Lhs ExprID
	Op  BinaryOp
	Rhs ExprID
}

type ExprAssignData struct {
	Target ExprID
	Op     AssignOp
	Value  ExprID
}

// ExprPipelineData is lhs |> rhs: the left operand fed as input to the
// right operand.
type ExprPipelineData struct {
	Lhs ExprID
	Rhs ExprID
}

type ExprCastData struct {
	Value  ExprID
	Target TypeSpecID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMemberData struct {
	Expr   ExprID
	Member source.Symbol
}

type ExprIndexData struct {
	Expr  ExprID
	Index ExprID
}
