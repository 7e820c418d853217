package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"ripple/internal/driver"
	"ripple/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rpl", "val a = 8;\n")

	res, err := driver.Tokenize(path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Kind{token.KwVal, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	got := kinds(res.Tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := driver.Tokenize(filepath.Join(t.TempDir(), "gone.rpl"), driver.Options{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestTokenizeVirtualCollectsDiagnostics(t *testing.T) {
	res := driver.TokenizeVirtual("bad.rpl", []byte(`"unterminated`), driver.Options{})

	if !res.Bag.HasErrors() {
		t.Fatal("expected a lex error")
	}
	// The stream still ends in EOF after the Invalid token.
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("last token = %v", last.Kind)
	}
	if res.Tokens[0].Kind != token.Invalid {
		t.Fatalf("first token = %v", res.Tokens[0].Kind)
	}
}

func TestTokenizeAllKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.rpl", "val a = 1;")
	b := writeSource(t, dir, "b.rpl", "val b = 2;")
	c := writeSource(t, dir, "c.rpl", "val c = 3;")

	results, err := driver.TokenizeAll([]string{c, a, b}, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].File.Path != c || results[1].File.Path != a || results[2].File.Path != b {
		t.Fatalf("order = %q %q %q", results[0].File.Path, results[1].File.Path, results[2].File.Path)
	}
}

func TestTokenizeAllFailsOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeSource(t, dir, "ok.rpl", "val a = 1;")

	_, err := driver.TokenizeAll([]string{ok, filepath.Join(dir, "gone.rpl")}, driver.Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestMergeBagsSortsByPath(t *testing.T) {
	resB := driver.TokenizeVirtual("b.rpl", []byte("§"), driver.Options{})
	resA := driver.TokenizeVirtual("a.rpl", []byte(`"x`), driver.Options{})

	merged := driver.MergeBags([]*driver.TokenizeResult{resB, resA})
	if merged.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", merged.Len())
	}
	// a.rpl's diagnostic first.
	items := merged.Items()
	if items[0].Code == items[1].Code {
		t.Fatalf("expected distinct codes, got %v twice", items[0].Code)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("ripple-test")
	if err != nil {
		t.Fatal(err)
	}

	path := writeSource(t, t.TempDir(), "main.rpl", "val a = 6_000.9;")
	first, err := driver.Tokenize(path, driver.Options{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}

	second, err := driver.Tokenize(path, driver.Options{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}

	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("cached stream has %d tokens, want %d", len(second.Tokens), len(first.Tokens))
	}
	for i := range first.Tokens {
		if second.Tokens[i] != first.Tokens[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, second.Tokens[i], first.Tokens[i])
		}
	}
	if second.Tokens[3].Float != 6000.9 {
		t.Fatalf("decoded float lost in cache: %v", second.Tokens[3].Float)
	}
}

func TestDiskCacheMissOnChangedContent(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := driver.OpenDiskCache("ripple-test")
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := writeSource(t, dir, "main.rpl", "val a = 1;")
	if _, err := driver.Tokenize(path, driver.Options{Cache: cache}); err != nil {
		t.Fatal(err)
	}

	// Rewrite with different content; the hash key must change.
	if err := os.WriteFile(path, []byte("val a = 2;"), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := driver.Tokenize(path, driver.Options{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tokens[3].Int != 2 {
		t.Fatalf("got stale tokens: %+v", res.Tokens[3])
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *driver.DiskCache
	res := driver.TokenizeVirtual("x.rpl", []byte("val a = 1;"), driver.Options{Cache: cache})
	if res.Bag.HasErrors() {
		t.Fatal("nil cache broke tokenization")
	}
	if _, ok := cache.Get(res.File); ok {
		t.Fatal("nil cache must always miss")
	}
	cache.Put(res.File, res) // must not panic
}
