package tokenlist

import (
	"errors"
	"strings"

	"striphints/internal/token"
)

// ErrNoTokens is returned when serializing an arena with no tokens at all.
var ErrNoTokens = errors.New("tokenlist: no tokens to serialize")

// Untokenize renders the arena back to source text. Positions recorded on
// the tokens drive the whitespace between them: the cursor always advances
// to a token's recorded End even when the emitted text is shorter, which
// is what lets a blanked-to-empty token swallow its original columns while
// a blanked-to-spaces token preserves them.
func Untokenize(a *Arena) (string, error) {
	if a.Len() == 0 {
		return "", ErrNoTokens
	}

	var sb strings.Builder
	prevRow, prevCol := uint32(1), uint32(0)
	startline := false
	var indents []string

	for i := 0; i < a.Len(); i++ {
		t := a.At(i)
		if t.Kind == token.EndMarker {
			break
		}

		switch t.Kind {
		case token.Indent:
			// Не пишем сам токен: отступ переиздаётся на startline.
			indents = append(indents, t.Text)
			continue
		case token.Dedent:
			if len(indents) > 0 {
				indents = indents[:len(indents)-1]
			}
			prevRow, prevCol = t.End.Row, t.End.Col
			continue
		}

		if startline && len(indents) > 0 {
			indent := indents[len(indents)-1]
			if t.Start.Col >= uint32(len(indent)) {
				sb.WriteString(indent)
				prevCol = uint32(len(indent))
			}
			startline = false
		}

		addWhitespace(&sb, prevRow, prevCol, t.Start.Row, t.Start.Col)
		sb.WriteString(t.Text)
		prevRow, prevCol = t.End.Row, t.End.Col

		if t.Kind == token.Newline || t.Kind == token.NL {
			prevRow++
			prevCol = 0
			startline = true
		}
	}
	return sb.String(), nil
}

// addWhitespace pads the gap between the cursor and the next token's start:
// escaped line breaks for row gaps, spaces for column gaps.
func addWhitespace(sb *strings.Builder, prevRow, prevCol, row, col uint32) {
	if row < prevRow || (row == prevRow && col < prevCol) {
		// Бывает после усечения в пустую строку; пробелы не нужны.
		return
	}
	if row > prevRow {
		for n := row - prevRow; n > 0; n-- {
			sb.WriteString("\\\n")
		}
		prevCol = 0
	}
	if col > prevCol {
		sb.WriteString(strings.Repeat(" ", int(col-prevCol)))
	}
}
