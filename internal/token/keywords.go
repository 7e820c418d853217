package token

var keywords = map[string]Kind{
	"fn":        KwFn,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"union":     KwUnion,
	"impl":      KwImpl,
	"const":     KwConst,
	"extern":    KwExtern,
	"val":       KwVal,
	"var":       KwVar,
	"defer":     KwDefer,
	"while":     KwWhile,
	"for":       KwFor,
	"in":        KwIn,
	"loop":      KwLoop,
	"if":        KwIf,
	"else":      KwElse,
	"match":     KwMatch,
	"break":     KwBreak,
	"return":    KwReturn,
	"void":      KwVoid,
	"undefined": KwUndefined,
	"true":      BoolLit,
	"false":     BoolLit,
	"null":      NullLit,
}

// LookupKeyword returns the kind for a reserved word and whether ident
// is one. Keywords are case-sensitive; only the lowercase spellings are
// recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
