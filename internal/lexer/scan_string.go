package lexer

import (
	"strings"
	"unicode/utf8"

	"ripple/internal/diag"
	"ripple/internal/token"
)

// scanString scans "..." with the escape table \n \t \r \" \\. Any
// other escaped character passes through literally as backslash plus
// that character. Token.Str holds the decoded body; Token.Text the raw
// slice including quotes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var body strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.StringLit,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
				Str:  body.String(),
			}
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			esc := lx.cursor.Bump()
			switch esc {
			case 'n':
				body.WriteByte('\n')
			case 't':
				body.WriteByte('\t')
			case 'r':
				body.WriteByte('\r')
			case '"':
				body.WriteByte('"')
			case '\\':
				body.WriteByte('\\')
			default:
				body.WriteByte('\\')
				body.WriteByte(esc)
			}
		default:
			if b >= utf8RuneSelf {
				r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
				body.WriteRune(r)
				lx.cursor.Off += uint32(sz)
			} else {
				body.WriteByte(lx.cursor.Bump())
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanChar scans 'c': exactly one rune, then the closing quote.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	r, sz := lx.peekRune()
	lx.cursor.Off += uint32(sz)

	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.CharLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Char: r,
	}
}
