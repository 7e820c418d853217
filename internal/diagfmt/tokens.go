package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ripple/internal/source"
	"ripple/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

// TokensPretty writes tokens in a human-readable listing with line and
// column positions.
func TokensPretty(w io.Writer, tokens []token.Token, file *source.File) error {
	for i, tok := range tokens {
		startPos, endPos := file.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON writes tokens as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
