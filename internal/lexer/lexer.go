// Package lexer turns Ripple source text into a spanned token stream.
// The lexer is a pure function of the file content: it holds no
// reference to the compiler context and does not intern identifiers;
// that happens downstream during node construction. Lexical errors are
// reported through Options.Reporter and yield an Invalid token instead
// of aborting, so a hosting tool can surface a clean diagnostic at a
// span rather than crash.
package lexer

import (
	"ripple/internal/source"
	"ripple/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipWhitespace consumes the whitespace run before the next token.
// Whitespace is the Unicode whitespace class; there is no comment
// syntax to skip.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			if r, sz := lx.peekRune(); sz > 0 && isSpaceRune(r) {
				lx.bumpRune()
				continue
			}
		}
		break
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}
