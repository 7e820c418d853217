package ast

// LiteralKind discriminates Literal payloads.
type LiteralKind uint8

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBool
	LitString
	LitNull
)

// Literal is a literal constant as it appears in expressions and
// patterns. Only the field matching Kind is meaningful.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

func IntLiteral(v int64) Literal     { return Literal{Kind: LitInt, Int: v} }
func FloatLiteral(v float64) Literal { return Literal{Kind: LitFloat, Float: v} }
func BoolLiteral(v bool) Literal     { return Literal{Kind: LitBool, Bool: v} }
func StringLiteral(s string) Literal { return Literal{Kind: LitString, Str: s} }
func NullLiteral() Literal           { return Literal{Kind: LitNull} }
