package token_test

import (
	"testing"

	"ripple/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  token.Kind
		ok    bool
	}{
		{"fn", token.KwFn, true},
		{"struct", token.KwStruct, true},
		{"enum", token.KwEnum, true},
		{"union", token.KwUnion, true},
		{"impl", token.KwImpl, true},
		{"const", token.KwConst, true},
		{"extern", token.KwExtern, true},
		{"val", token.KwVal, true},
		{"var", token.KwVar, true},
		{"defer", token.KwDefer, true},
		{"while", token.KwWhile, true},
		{"for", token.KwFor, true},
		{"in", token.KwIn, true},
		{"loop", token.KwLoop, true},
		{"if", token.KwIf, true},
		{"else", token.KwElse, true},
		{"match", token.KwMatch, true},
		{"break", token.KwBreak, true},
		{"return", token.KwReturn, true},
		{"void", token.KwVoid, true},
		{"undefined", token.KwUndefined, true},
		{"true", token.BoolLit, true},
		{"false", token.BoolLit, true},
		{"null", token.NullLit, true},
		{"function", 0, false},
		{"Val", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		kind, ok := token.LookupKeyword(tc.ident)
		if ok != tc.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tc.ident, ok, tc.ok)
			continue
		}
		if ok && kind != tc.kind {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tc.ident, kind, tc.kind)
		}
	}
}

func TestClassification(t *testing.T) {
	lit := token.Token{Kind: token.IntLit}
	if !lit.IsLiteral() || lit.IsKeyword() || lit.IsPunctOrOp() {
		t.Error("IntLit misclassified")
	}

	kw := token.Token{Kind: token.KwReturn}
	if !kw.IsKeyword() || kw.IsLiteral() {
		t.Error("KwReturn misclassified")
	}

	op := token.Token{Kind: token.PipeGt}
	if !op.IsPunctOrOp() || op.IsLiteral() || op.IsKeyword() {
		t.Error("PipeGt misclassified")
	}

	id := token.Token{Kind: token.Ident}
	if !id.IsIdent() || id.IsLiteral() || id.IsKeyword() || id.IsPunctOrOp() {
		t.Error("Ident misclassified")
	}

	// true/false lex as BoolLit, so they count as literals, not keywords
	b := token.Token{Kind: token.BoolLit}
	if !b.IsLiteral() || b.IsKeyword() {
		t.Error("BoolLit misclassified")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want string
	}{
		{token.Invalid, "Invalid"},
		{token.EOF, "EOF"},
		{token.KwUndefined, "KwUndefined"},
		{token.PipeGt, "PipeGt"},
		{token.Question, "Question"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
