package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"ripple/internal/source"
)

func TestResolveSingleLine(t *testing.T) {
	f := source.NewVirtual("test.rpl", []byte("val a = 1;"))

	start, end := f.Resolve(source.Span{Start: 4, End: 5})
	if start.Line != 1 || start.Col != 5 {
		t.Fatalf("start = %d:%d, want 1:5", start.Line, start.Col)
	}
	if end.Line != 1 || end.Col != 6 {
		t.Fatalf("end = %d:%d, want 1:6", end.Line, end.Col)
	}
}

func TestResolveMultiLine(t *testing.T) {
	content := "first\nsecond\nthird\n"
	f := source.NewVirtual("test.rpl", []byte(content))

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},   // 'f'
		{4, 1, 5},   // 't' of first
		{5, 1, 6},   // the newline itself
		{6, 2, 1},   // 's' of second
		{11, 2, 6},  // 'd' of second
		{13, 3, 1},  // 't' of third
		{17, 3, 5},  // 'd' of third
		{19, 4, 1},  // EOF offset
	}
	for _, tc := range cases {
		got, _ := f.Resolve(source.Span{Start: tc.off, End: tc.off})
		if got.Line != tc.line || got.Col != tc.col {
			t.Errorf("offset %d resolved to %d:%d, want %d:%d",
				tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestLine(t *testing.T) {
	f := source.NewVirtual("test.rpl", []byte("alpha\nbeta\ngamma"))

	cases := []struct {
		n    uint32
		want string
	}{
		{1, "alpha"},
		{2, "beta"},
		{3, "gamma"},
		{0, ""},
		{4, ""},
	}
	for _, tc := range cases {
		if got := f.Line(tc.n); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestVirtualFlag(t *testing.T) {
	f := source.NewVirtual("mem.rpl", []byte("x"))
	if f.Flags&source.FileVirtual == 0 {
		t.Fatal("NewVirtual must set FileVirtual")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.rpl")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("val a = 1;\r\nval b = 2;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := source.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("expected FileHadBOM")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF")
	}
	want := "val a = 1;\nval b = 2;\n"
	if string(f.Content) != want {
		t.Fatalf("Content = %q, want %q", f.Content, want)
	}
	if f.Line(2) != "val b = 2;" {
		t.Fatalf("Line(2) = %q", f.Line(2))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := source.Load(filepath.Join(t.TempDir(), "nope.rpl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestHashTracksContent(t *testing.T) {
	a := source.NewVirtual("a.rpl", []byte("same"))
	b := source.NewVirtual("b.rpl", []byte("same"))
	c := source.NewVirtual("c.rpl", []byte("different"))

	if a.Hash != b.Hash {
		t.Error("identical content must hash identically")
	}
	if a.Hash == c.Hash {
		t.Error("different content must hash differently")
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 3, End: 7}
	b := source.Span{Start: 5, End: 12}

	got := a.Cover(b)
	if got.Start != 3 || got.End != 12 {
		t.Fatalf("Cover = %v, want 3..12", got)
	}
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}
	if !(source.Span{Start: 2, End: 2}).Empty() {
		t.Fatal("zero-length span should be Empty")
	}
}
