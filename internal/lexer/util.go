package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of the byte cursor =====

// peekRune decodes the rune at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8RuneSelf { // fast path: ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

// bumpRune consumes one full rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	lx.cursor.Off += uint32(sz)
}

// ===== Byte classifiers =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceRune(r rune) bool { return unicode.IsSpace(r) }

// ===== Greedy operator matching =====

// try2 consumes two bytes if they match exactly.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
