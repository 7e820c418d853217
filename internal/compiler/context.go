// Package compiler holds the per-compilation context threaded through
// every pass: the symbol interner, the AST stores, and the diagnostics
// bag. One pass mutates the context at a time; sharing across passes is
// by exclusive hand-off, never concurrent access.
package compiler

import (
	"ripple/internal/ast"
	"ripple/internal/diag"
	"ripple/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not
// configure a limit.
const DefaultMaxDiagnostics = 100

// Options configures a Context.
type Options struct {
	// ArenaChunkSize is the chunk capacity for all AST arenas; 0 means
	// ast.DefaultChunkSize.
	ArenaChunkSize int
	// MaxDiagnostics bounds the diagnostics bag; 0 means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// Context is the aggregate state of one compilation unit.
type Context struct {
	Interner *source.Interner
	AST      *ast.Builder
	Diags    *diag.Bag

	// Target names the compilation target.
	Target string
	// CurrentPass labels the running compiler stage, for diagnostic
	// attribution. Advisory: each pass sets it on entry.
	CurrentPass string
}

// New creates a fresh context for one compilation unit.
func New(target string, opts Options) *Context {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = DefaultMaxDiagnostics
	}
	return &Context{
		Interner:    source.NewInterner(),
		AST:         ast.NewBuilder(opts.ArenaChunkSize),
		Diags:       diag.NewBag(maxDiag),
		Target:      target,
		CurrentPass: "init",
	}
}

// Report appends a diagnostic. Error-level diagnostics mark the
// compilation as failed but do not stop the running pass; passes keep
// going to surface as many problems as possible.
func (c *Context) Report(sev diag.Severity, code diag.Code, msg string, span source.Span) {
	c.Diags.Add(diag.New(sev, code, span, msg))
}

// HasErrors reports whether any Error-level diagnostic was recorded.
func (c *Context) HasErrors() bool {
	return c.Diags.HasErrors()
}

// Intern is a shortcut for the interner.
func (c *Context) Intern(s string) source.Symbol {
	return c.Interner.Intern(s)
}

// Reporter returns a diag.Reporter feeding this context's bag, for
// components like the lexer that take a reporter rather than the whole
// context.
func (c *Context) Reporter() diag.Reporter {
	return &diag.BagReporter{Bag: c.Diags}
}
