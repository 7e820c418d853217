package source

import (
	"crypto/sha256"
	"os"
)

// FileFlags encodes metadata about how a source file was obtained.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content of a single compilation unit together with the
// derived line index used for span resolution.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position in a source file, 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// New builds a File from already-normalized bytes, computing the line
// index and content hash.
func New(path string, content []byte, flags FileFlags) *File {
	return &File{
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}
}

// NewVirtual builds a File that did not come from disk (tests, stdin).
func NewVirtual(name string, content []byte) *File {
	return New(name, content, FileVirtual)
}

// Load reads a file from disk, strips a UTF-8 BOM and normalizes CRLF
// line endings before indexing.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return New(path, content, flags), nil
}

// Resolve converts a span into start and end line/column positions.
func (f *File) Resolve(span Span) (start, end LineCol) {
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Line returns the text of the given 1-based line, without the trailing
// newline. Out-of-range line numbers yield an empty string.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenLineIdx := uint32(len(f.LineIdx))
	lenContent := uint32(len(f.Content))

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}
