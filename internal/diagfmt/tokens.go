package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"striphints/internal/token"
)

// TokenOutput — сериализуемое представление токена для json/msgpack.
type TokenOutput struct {
	Kind    string `json:"kind" msgpack:"kind"`
	Text    string `json:"text,omitempty" msgpack:"text,omitempty"`
	Row     uint32 `json:"row" msgpack:"row"`
	Col     uint32 `json:"col" msgpack:"col"`
	EndRow  uint32 `json:"end_row" msgpack:"end_row"`
	EndCol  uint32 `json:"end_col" msgpack:"end_col"`
	Nesting int    `json:"nesting" msgpack:"nesting"`
}

func buildTokenOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for i := range tokens {
		t := &tokens[i]
		output = append(output, TokenOutput{
			Kind:    t.Kind.String(),
			Text:    t.Text,
			Row:     t.Start.Row,
			Col:     t.Start.Col,
			EndRow:  t.End.Row,
			EndCol:  t.End.Col,
			Nesting: t.Nesting,
		})
		if t.Kind == token.EndMarker {
			break
		}
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i := range tokens {
		t := &tokens[i]
		fmt.Fprintf(w, "%3d: %-10s", i+1, t.Kind.String())
		if t.Text != "" {
			fmt.Fprintf(w, " %q", t.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d nest=%d\n",
			t.Start.Row, t.Start.Col, t.End.Row, t.End.Col, t.Nesting)
		if t.Kind == token.EndMarker {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens))
}

// FormatTokensMsgpack выводит токены в msgpack формате (для машинного
// потребления: компактнее и быстрее JSON).
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(buildTokenOutput(tokens))
}
