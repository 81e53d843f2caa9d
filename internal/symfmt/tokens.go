package symfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"minic/internal/source"
	"minic/internal/token"
)

// TokenOutput is the JSON projection of one token.
type TokenOutput struct {
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Text     string `json:"text,omitempty"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
}

// WriteTokensPretty lists tokens one per line with resolved positions.
func WriteTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// WriteTokensJSON dumps the token stream as a JSON array.
func WriteTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, TokenOutput{
			Kind:     tok.Kind.String(),
			Category: tok.Category(),
			Text:     tok.Text,
			Line:     start.Line,
			Col:      start.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
