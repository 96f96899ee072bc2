package lexer

import (
	"unicode"
	"unicode/utf8"

	"striphints/internal/diag"
	"striphints/internal/token"
)

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanIdentOrPrefixedString scans an identifier. When the identifier turns
// out to be a string prefix (r, b, u, f and their combinations) immediately
// followed by a quote, the whole thing is lexed as one String token, the
// way the host tokenizer does.
func (lx *Lexer) scanIdentOrPrefixedString() {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			for i := 0; i < size; i++ {
				lx.cursor.Bump()
			}
			continue
		}
		break
	}

	text := lx.cursor.Text(m)
	if text == "" {
		// Непонятный байт: съедаем, чтобы не зациклиться.
		b := lx.cursor.Bump()
		lx.report(diag.LexUnknownChar, lx.cursor.SpanFrom(m), "unexpected character")
		lx.emit(token.Invalid, string(rune(b)), m)
		return
	}

	q := lx.cursor.Peek()
	if (q == '"' || q == '\'') && isStringPrefix(text) {
		lx.scanString(m, text)
		return
	}
	lx.emit(token.Name, text, m)
}

// isStringPrefix reports whether text is a legal string literal prefix.
func isStringPrefix(text string) bool {
	if len(text) > 2 {
		return false
	}
	seen := map[byte]bool{}
	for i := 0; i < len(text); i++ {
		b := text[i] | 0x20 // lowercase
		switch b {
		case 'r', 'b', 'u', 'f':
			if seen[b] {
				return false
			}
			seen[b] = true
		default:
			return false
		}
	}
	// 'u' не комбинируется с другими префиксами.
	if seen['u'] && len(text) > 1 {
		return false
	}
	return true
}
