package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/token"
)

// scanString scans a string literal starting at the quote under the cursor.
// The mark covers an already-consumed prefix (r, b, f, ...), possibly empty.
// Backslash always consumes the following character, including a line break
// and including inside raw strings: that is how the host tokenizer decides
// where the literal ends, independent of escape semantics.
func (lx *Lexer) scanString(m Mark, prefix string) {
	quote := lx.cursor.Bump()

	triple := false
	if lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	} else if lx.cursor.Peek() == quote {
		// Пустая строка "" или ''.
		lx.cursor.Bump()
		lx.emit(token.String, lx.cursor.Text(m), m)
		return
	}

	if triple {
		lx.scanTripleQuoted(m, quote)
		return
	}

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(m),
				"unterminated string literal")
			break
		}
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == quote {
			break
		}
	}
	lx.emit(token.String, lx.cursor.Text(m), m)
}

func (lx *Lexer) scanTripleQuoted(m Mark, quote byte) {
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == quote && lx.cursor.Peek() == quote && lx.cursor.PeekAt(1) == quote {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
	}
	if !closed {
		lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(m),
			"unterminated triple-quoted string literal")
	}
	lx.emit(token.String, lx.cursor.Text(m), m)
}
