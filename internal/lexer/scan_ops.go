package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/token"
)

// Longest-match tables for operators and punctuation.
var threeByteOps = []string{"**=", "//=", ">>=", "<<=", "..."}

var twoByteOps = []string{
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "@=", "&=", "|=", "^=",
}

const oneByteOps = "+-*/%@&|^~<>()[]{},:.;="

// scanOperatorOrPunct scans one operator token and maintains the bracket
// depth used for Newline/NL decisions.
func (lx *Lexer) scanOperatorOrPunct() {
	m := lx.cursor.Mark()

	if op, ok := lx.matchOp(); ok {
		for i := 0; i < len(op); i++ {
			lx.cursor.Bump()
		}
		switch op {
		case "(", "[", "{":
			lx.parenDepth++
		case ")", "]", "}":
			if lx.parenDepth > 0 {
				lx.parenDepth--
			}
		}
		lx.emit(token.Op, op, m)
		return
	}

	b := lx.cursor.Bump()
	lx.report(diag.LexUnknownChar, lx.cursor.SpanFrom(m), "unexpected character")
	lx.emit(token.Invalid, string(rune(b)), m)
}

func (lx *Lexer) matchOp() (string, bool) {
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		b2 := lx.cursor.PeekAt(2)
		cand3 := string([]byte{b0, b1, b2})
		for _, op := range threeByteOps {
			if op == cand3 {
				return op, true
			}
		}
		cand2 := string([]byte{b0, b1})
		for _, op := range twoByteOps {
			if op == cand2 {
				return op, true
			}
		}
	}
	b := lx.cursor.Peek()
	for i := 0; i < len(oneByteOps); i++ {
		if oneByteOps[i] == b {
			return string(rune(b)), true
		}
	}
	return "", false
}
