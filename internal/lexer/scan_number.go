package lexer

import (
	"strconv"
	"strings"

	"ripple/internal/diag"
	"ripple/internal/token"
)

// scanNumber scans a decimal integer or float literal. Underscores are
// grouping separators and are dropped from the parsed value. A '.' is
// consumed as a decimal point only when the character after it is a
// digit; otherwise it is left for the punctuation scanner, so "3.foo"
// lexes as IntLit 3, Dot, Ident.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	var digits strings.Builder
	isFloat := false

	digits.WriteByte(lx.cursor.Bump())

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b):
			lx.cursor.Bump()
			digits.WriteByte(b)
		case b == '_':
			lx.cursor.Bump()
		case b == '.' && !isFloat:
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '.' || !isDec(b1) {
				goto emit
			}
			lx.cursor.Bump() // '.'
			lx.cursor.Bump() // first fractional digit
			digits.WriteByte('.')
			digits.WriteByte(b1)
			isFloat = true
		default:
			goto emit
		}
	}

emit:
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if isFloat {
		f, err := strconv.ParseFloat(digits.String(), 64)
		if err != nil {
			lx.errLex(diag.LexBadNumber, sp, "invalid float literal "+text)
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: f}
	}

	i, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "invalid integer literal "+text)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: i}
}
