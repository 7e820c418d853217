package ast

import (
	"ripple/internal/arena"
	"ripple/internal/source"
)

// PatternKind discriminates match patterns.
type PatternKind uint8

const (
	PatLiteral PatternKind = iota
	PatIdent
	PatWildcard
)

var patternKindNames = [...]string{
	PatLiteral: "Literal", PatIdent: "Ident", PatWildcard: "Wildcard",
}

func (k PatternKind) String() string {
	if int(k) < len(patternKindNames) {
		return patternKindNames[k]
	}
	return "Pattern(?)"
}

// Pattern is one match pattern node.
type Pattern struct {
	Kind    PatternKind
	Span    source.Span
	Payload uint32
}

type PatLiteralData struct {
	Value Literal
}

type PatIdentData struct {
	Name source.Symbol
}

// Patterns manages allocation of pattern nodes.
type Patterns struct {
	Arena    *arena.Arena[Pattern]
	Literals *arena.Arena[PatLiteralData]
	Idents   *arena.Arena[PatIdentData]
}

func NewPatterns(chunkSize int) *Patterns {
	return &Patterns{
		Arena:    arena.New[Pattern](chunkSize),
		Literals: arena.New[PatLiteralData](chunkSize),
		Idents:   arena.New[PatIdentData](chunkSize),
	}
}

func (p *Patterns) new(kind PatternKind, span source.Span, payload uint32) PatternID {
	return p.Arena.Alloc(Pattern{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	})
}

// Get returns the pattern node for id.
func (p *Patterns) Get(id PatternID) *Pattern {
	return p.Arena.Get(id)
}

// Len returns the number of allocated pattern nodes.
func (p *Patterns) Len() int {
	return p.Arena.Len()
}

// NewLiteral creates a literal pattern.
func (p *Patterns) NewLiteral(span source.Span, lit Literal) PatternID {
	payload := p.Literals.Alloc(PatLiteralData{Value: lit})
	return p.new(PatLiteral, span, payload.Index())
}

// NewIdent creates a binding pattern.
func (p *Patterns) NewIdent(span source.Span, name source.Symbol) PatternID {
	payload := p.Idents.Alloc(PatIdentData{Name: name})
	return p.new(PatIdent, span, payload.Index())
}

// NewWildcard creates the `_` pattern.
func (p *Patterns) NewWildcard(span source.Span) PatternID {
	return p.new(PatWildcard, span, 0)
}

// Literal returns the literal payload if id is a literal pattern.
func (p *Patterns) Literal(id PatternID) (*PatLiteralData, bool) {
	pt := p.Get(id)
	if pt.Kind != PatLiteral {
		return nil, false
	}
	return p.Literals.At(pt.Payload), true
}

// Ident returns the binding payload if id is a binding pattern.
func (p *Patterns) Ident(id PatternID) (*PatIdentData, bool) {
	pt := p.Get(id)
	if pt.Kind != PatIdent {
		return nil, false
	}
	return p.Idents.At(pt.Payload), true
}
