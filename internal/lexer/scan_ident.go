package lexer

import (
	"ripple/internal/token"
)

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies the
// result against the keyword table. Token.Text is exactly the source
// slice; interning is the caller's concern, not the lexer's.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		tok := token.Token{Kind: k, Span: sp, Text: text}
		if k == token.BoolLit {
			tok.Bool = text == "true"
		}
		return tok
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
