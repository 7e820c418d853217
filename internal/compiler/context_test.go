package compiler_test

import (
	"testing"

	"ripple/internal/ast"
	"ripple/internal/compiler"
	"ripple/internal/diag"
	"ripple/internal/source"
)

func TestNewDefaults(t *testing.T) {
	ctx := compiler.New("x86_64-linux", compiler.Options{})

	if ctx.Interner == nil || ctx.AST == nil || ctx.Diags == nil {
		t.Fatal("New left a field nil")
	}
	if ctx.Target != "x86_64-linux" {
		t.Fatalf("Target = %q", ctx.Target)
	}
	if ctx.CurrentPass != "init" {
		t.Fatalf("CurrentPass = %q", ctx.CurrentPass)
	}
	if ctx.Diags.Cap() != compiler.DefaultMaxDiagnostics {
		t.Fatalf("bag cap = %d, want %d", ctx.Diags.Cap(), compiler.DefaultMaxDiagnostics)
	}
}

func TestNewClampsNegativeMaxDiagnostics(t *testing.T) {
	ctx := compiler.New("", compiler.Options{MaxDiagnostics: -1})
	if ctx.Diags.Cap() != compiler.DefaultMaxDiagnostics {
		t.Fatalf("bag cap = %d, want %d", ctx.Diags.Cap(), compiler.DefaultMaxDiagnostics)
	}
}

func TestNewHonorsOptions(t *testing.T) {
	ctx := compiler.New("", compiler.Options{MaxDiagnostics: 3, ArenaChunkSize: 2})
	if ctx.Diags.Cap() != 3 {
		t.Fatalf("bag cap = %d, want 3", ctx.Diags.Cap())
	}
	// Arenas must work with a tiny chunk size.
	for i := 0; i < 5; i++ {
		ctx.AST.Exprs.NewLiteral(source.Span{}, ast.IntLiteral(int64(i)))
	}
	if ctx.AST.Exprs.Len() != 5 {
		t.Fatalf("Exprs.Len() = %d", ctx.AST.Exprs.Len())
	}
}

func TestReportAndHasErrors(t *testing.T) {
	ctx := compiler.New("", compiler.Options{})
	if ctx.HasErrors() {
		t.Fatal("fresh context must have no errors")
	}

	ctx.Report(diag.SevWarning, diag.LexBadNumber, "odd", source.Span{Start: 0, End: 1})
	if ctx.HasErrors() {
		t.Fatal("a warning is not an error")
	}

	ctx.Report(diag.SevError, diag.LexUnknownChar, "bad", source.Span{Start: 1, End: 2})
	if !ctx.HasErrors() {
		t.Fatal("expected HasErrors after an error report")
	}
	if ctx.Diags.Len() != 2 {
		t.Fatalf("Diags.Len() = %d", ctx.Diags.Len())
	}
}

func TestInternGoesThroughContext(t *testing.T) {
	ctx := compiler.New("", compiler.Options{})
	a := ctx.Intern("name")
	b := ctx.Intern("name")
	if a != b {
		t.Fatalf("Intern returned %v then %v", a, b)
	}
	if ctx.Interner.Resolve(a) != "name" {
		t.Fatalf("Resolve = %q", ctx.Interner.Resolve(a))
	}
}

func TestReporterFeedsBag(t *testing.T) {
	ctx := compiler.New("", compiler.Options{})
	r := ctx.Reporter()
	diag.ReportError(r, diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "via reporter")
	if ctx.Diags.Len() != 1 {
		t.Fatalf("Diags.Len() = %d", ctx.Diags.Len())
	}
}
