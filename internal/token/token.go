package token

import (
	"ripple/internal/source"
)

// Token is a single lexical unit with its byte span. Text always holds
// the raw source slice; literal kinds additionally carry their decoded
// value (Int, Float, Str, Char, Bool), filled by the lexer.
type Token struct {
	Kind Kind
	Span source.Span
	Text string

	Int   int64   // valid when Kind == IntLit
	Float float64 // valid when Kind == FloatLit
	Str   string  // unescaped body, valid when Kind == StringLit
	Char  rune    // valid when Kind == CharLit
	Bool  bool    // valid when Kind == BoolLit
}

// IsLiteral reports whether the token is a literal of any form.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, BoolLit, NullLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwStruct, KwEnum, KwUnion, KwImpl, KwConst, KwExtern,
		KwVal, KwVar, KwDefer, KwWhile, KwFor, KwIn, KwLoop, KwIf,
		KwElse, KwMatch, KwBreak, KwReturn, KwVoid, KwUndefined:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		Pipe, Caret, Shl, Shr, Tilde, OrOr, AndAnd, EqEq, BangEq,
		Lt, Gt, LtEq, GtEq, Plus, Minus, Star, Slash, Percent,
		Bang, Amp, At, PipeGt, Arrow, FatArrow,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Comma, Dot, Colon, Semicolon, Question:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
