package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ripple/internal/diag"
	"ripple/internal/diagfmt"
	"ripple/internal/source"
	"ripple/internal/token"
)

func TestPrettySingleLineSpan(t *testing.T) {
	file := source.NewVirtual("main.rpl", []byte("val a = $;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 8, End: 9}, "unknown character $"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, file, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "main.rpl:1:9: ERROR LEX1001: unknown character $") {
		t.Fatalf("missing header line:\n%s", out)
	}
	if !strings.Contains(out, "val a = $;") {
		t.Fatalf("missing source line:\n%s", out)
	}
	// Caret under column 9: two leading spaces of margin plus eight of
	// padding.
	if !strings.Contains(out, "\n  "+strings.Repeat(" ", 8)+"^") {
		t.Fatalf("caret misaligned:\n%s", out)
	}
}

func TestPrettyUnderlinesSpanWidth(t *testing.T) {
	file := source.NewVirtual("main.rpl", []byte("bad token here\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexBadNumber, source.Span{Start: 4, End: 9}, "bad"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, file, diagfmt.PrettyOpts{})

	if !strings.Contains(sb.String(), "^~~~~") {
		t.Fatalf("expected a five-column underline:\n%s", sb.String())
	}
}

func TestPrettyShowsNotes(t *testing.T) {
	file := source.NewVirtual("main.rpl", []byte("x\ny\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "bad").
		WithNote(source.Span{Start: 2, End: 3}, "related binding here"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, file, diagfmt.PrettyOpts{ShowNotes: true})
	if !strings.Contains(sb.String(), "note: main.rpl:2:1: related binding here") {
		t.Fatalf("missing note:\n%s", sb.String())
	}

	sb.Reset()
	diagfmt.Pretty(&sb, bag, file, diagfmt.PrettyOpts{})
	if strings.Contains(sb.String(), "note:") {
		t.Fatalf("notes shown despite ShowNotes=false:\n%s", sb.String())
	}
}

func TestTokensPretty(t *testing.T) {
	file := source.NewVirtual("main.rpl", []byte("val x"))
	tokens := []token.Token{
		{Kind: token.KwVal, Span: source.Span{Start: 0, End: 3}, Text: "val"},
		{Kind: token.Ident, Span: source.Span{Start: 4, End: 5}, Text: "x"},
		{Kind: token.EOF, Span: source.Span{Start: 5, End: 5}},
	}

	var sb strings.Builder
	if err := diagfmt.TokensPretty(&sb, tokens, file); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "KwVal") || !strings.Contains(out, `"val"`) {
		t.Fatalf("missing keyword row:\n%s", out)
	}
	if !strings.Contains(out, "1:5-1:6") {
		t.Fatalf("missing ident position:\n%s", out)
	}
}

func TestTokensJSON(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.IntLit, Span: source.Span{Start: 0, End: 1}, Text: "8", Int: 8},
		{Kind: token.EOF, Span: source.Span{Start: 1, End: 1}},
	}

	var sb strings.Builder
	if err := diagfmt.TokensJSON(&sb, tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, sb.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d tokens, want 2", len(decoded))
	}
	if decoded[0].Kind != "IntLit" || decoded[0].Text != "8" {
		t.Fatalf("first token = %+v", decoded[0])
	}
	if decoded[1].Kind != "EOF" {
		t.Fatalf("last token = %+v", decoded[1])
	}
}
