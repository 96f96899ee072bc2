package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/token"
)

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// scanNumber covers the host language's numeric literal grammar closely
// enough for layout-preserving transforms: radix prefixes, underscores,
// floats with exponents, and imaginary suffixes. Malformed digits are
// reported but still consumed as one Number token so downstream positions
// stay consistent.
func (lx *Lexer) scanNumber() {
	m := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if b1 := lx.cursor.PeekAt(1); b1 == 'x' || b1 == 'X' || b1 == 'o' || b1 == 'O' || b1 == 'b' || b1 == 'B' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for {
				b := lx.cursor.Peek()
				if b == '_' || isHex(b) {
					lx.cursor.Bump()
					digits++
					continue
				}
				break
			}
			if digits == 0 {
				lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(m),
					"radix literal with no digits")
			}
			lx.emit(token.Number, lx.cursor.Text(m), m)
			return
		}
	}

	lx.eatDecimalRun()
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDecimalRun()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if b1 := lx.cursor.PeekAt(1); isDec(b1) || ((b1 == '+' || b1 == '-') && isDec(lx.cursor.PeekAt(2))) {
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			lx.eatDecimalRun()
		}
	}
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
	}
	lx.emit(token.Number, lx.cursor.Text(m), m)
}

func (lx *Lexer) eatDecimalRun() {
	for {
		b := lx.cursor.Peek()
		if isDec(b) || b == '_' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}
