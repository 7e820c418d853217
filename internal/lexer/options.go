package lexer

import (
	"ripple/internal/diag"
	"ripple/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil, in which case
	// errors are dropped but lexing still continues with Invalid
	// tokens.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
