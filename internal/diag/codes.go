package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are banded by compiler area
// so the numeric value alone places a diagnostic.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumber          Code = 1004

	// Driver / IO
	IOInfo        Code = 4000
	IOFileRead    Code = 4001
	IOCacheWrite  Code = 4002
	IOBadManifest Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexical note",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedChar:   "unterminated character literal",
	LexBadNumber:          "malformed numeric literal",
	IOInfo:                "driver note",
	IOFileRead:            "cannot read source file",
	IOCacheWrite:          "cannot write cache entry",
	IOBadManifest:         "malformed project manifest",
}

// ID returns the banded short identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
