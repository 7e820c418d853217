package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token emitted after a lexical error.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a string literal token.
	StringLit
	// BoolLit represents a boolean literal token ('true' or 'false').
	BoolLit
	// NullLit represents the 'null' literal token.
	NullLit

	// KwFn represents the 'fn' keyword.
	KwFn
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwUnion represents the 'union' keyword.
	KwUnion
	// KwImpl represents the 'impl' keyword.
	KwImpl
	// KwConst represents the 'const' keyword.
	KwConst
	// KwExtern represents the 'extern' keyword.
	KwExtern
	// KwVal represents the 'val' keyword.
	KwVal
	// KwVar represents the 'var' keyword.
	KwVar
	// KwDefer represents the 'defer' keyword.
	KwDefer
	// KwWhile represents the 'while' keyword.
	KwWhile
	// KwFor represents the 'for' keyword.
	KwFor
	// KwIn represents the 'in' keyword.
	KwIn
	// KwLoop represents the 'loop' keyword.
	KwLoop
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwMatch represents the 'match' keyword.
	KwMatch
	// KwBreak represents the 'break' keyword.
	KwBreak
	// KwReturn represents the 'return' keyword.
	KwReturn
	// KwVoid represents the 'void' keyword.
	KwVoid
	// KwUndefined represents the 'undefined' keyword.
	KwUndefined

	// Assign represents the assignment operator token.
	Assign // =
	// PlusAssign represents the compound plus-assign token.
	PlusAssign // +=
	// MinusAssign represents the compound minus-assign token.
	MinusAssign // -=
	// StarAssign represents the compound star-assign token.
	StarAssign // *=
	// SlashAssign represents the compound slash-assign token.
	SlashAssign // /=

	// Pipe represents the bitwise-or operator token.
	Pipe // |
	// Caret represents the bitwise-xor operator token.
	Caret // ^
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Tilde represents the bitwise-not operator token.
	Tilde // ~

	// OrOr represents the logical-or operator token.
	OrOr // ||
	// AndAnd represents the logical-and operator token.
	AndAnd // &&

	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=

	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %

	// Bang represents the logical-not operator token.
	Bang // !
	// Amp represents the ampersand operator token.
	Amp // &
	// At represents the at-sign token.
	At // @

	// PipeGt represents the pipeline operator token.
	PipeGt // |>

	// Arrow represents the thin arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Question represents the question-mark token.
	Question // ?
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	CharLit:     "CharLit",
	StringLit:   "StringLit",
	BoolLit:     "BoolLit",
	NullLit:     "NullLit",
	KwFn:        "KwFn",
	KwStruct:    "KwStruct",
	KwEnum:      "KwEnum",
	KwUnion:     "KwUnion",
	KwImpl:      "KwImpl",
	KwConst:     "KwConst",
	KwExtern:    "KwExtern",
	KwVal:       "KwVal",
	KwVar:       "KwVar",
	KwDefer:     "KwDefer",
	KwWhile:     "KwWhile",
	KwFor:       "KwFor",
	KwIn:        "KwIn",
	KwLoop:      "KwLoop",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwMatch:     "KwMatch",
	KwBreak:     "KwBreak",
	KwReturn:    "KwReturn",
	KwVoid:      "KwVoid",
	KwUndefined: "KwUndefined",
	Assign:      "Assign",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	StarAssign:  "StarAssign",
	SlashAssign: "SlashAssign",
	Pipe:        "Pipe",
	Caret:       "Caret",
	Shl:         "Shl",
	Shr:         "Shr",
	Tilde:       "Tilde",
	OrOr:        "OrOr",
	AndAnd:      "AndAnd",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	Lt:          "Lt",
	Gt:          "Gt",
	LtEq:        "LtEq",
	GtEq:        "GtEq",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Percent:     "Percent",
	Bang:        "Bang",
	Amp:         "Amp",
	At:          "At",
	PipeGt:      "PipeGt",
	Arrow:       "Arrow",
	FatArrow:    "FatArrow",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Comma:       "Comma",
	Dot:         "Dot",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Question:    "Question",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
