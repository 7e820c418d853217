package ast

import (
	"ripple/internal/source"
)

// ExprKind discriminates expression nodes.
type ExprKind uint8

const (
	ExprLiteral ExprKind = iota
	ExprIdent
	ExprParen
	ExprBlock
	ExprIf
	ExprMatch
	ExprLoop
	ExprWhile
	ExprFor
	ExprReturn
	ExprBreak
	ExprContinue
	ExprBinary
	ExprAssign
	ExprPipeline
	ExprCast
	ExprUnary
	ExprCall
	ExprMember
	ExprIndex
	// ExprError is the recovery placeholder a parser inserts where it
	// could not build a real expression, so later passes still see a
	// node at that span.
	ExprError
)

var exprKindNames = [...]string{
	ExprLiteral: "Literal", ExprIdent: "Ident", ExprParen: "Paren",
	ExprBlock: "Block", ExprIf: "If", ExprMatch: "Match",
	ExprLoop: "Loop", ExprWhile: "While", ExprFor: "For",
	ExprReturn: "Return", ExprBreak: "Break", ExprContinue: "Continue",
	ExprBinary: "Binary", ExprAssign: "Assign", ExprPipeline: "Pipeline",
	ExprCast: "Cast", ExprUnary: "Unary", ExprCall: "Call",
	ExprMember: "Member", ExprIndex: "Index", ExprError: "Error",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// Expr is one expression node. Kind-specific operands live in the
// matching payload arena, addressed by Payload; Ty is the type
// annotation slot later passes fill in (NoTypeSpec until then).
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
	Ty      TypeSpecID
}
