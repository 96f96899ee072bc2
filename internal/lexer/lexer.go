package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/source"
	"striphints/internal/token"
)

// Lexer tokenizes Python source into the flat stream the stripper operates
// on. The token model mirrors the host tokenizer: logical line ends are
// Newline, incidental breaks are NL, indentation becomes Indent/Dedent
// pairs, and backslash continuations produce no token at all (the
// untokenizer reconstructs them from row gaps).
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	parenDepth  int
	indents     []int
	atLineStart bool
	// lineHasContent становится true после первого значимого токена
	// логической строки; от него зависит Newline vs NL.
	lineHasContent bool
	toks           []token.Token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole file and returns the token stream, terminated by
// an EndMarker. Lexical errors are reported and scanning continues; the
// stream is always well-formed enough to untokenize.
func (lx *Lexer) Tokenize() []token.Token {
	for !lx.cursor.EOF() {
		if lx.atLineStart && lx.parenDepth == 0 {
			lx.beginLine()
			continue
		}
		lx.skipBlanks()
		if lx.cursor.EOF() {
			break
		}

		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			lx.scanLineBreak()

		case b == '\\' && lx.cursor.PeekAt(1) == '\n':
			// Явное продолжение строки: токен не создаётся.
			lx.cursor.Bump()
			lx.cursor.Bump()

		case b == '\\':
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.report(diag.LexBadContinuation, lx.cursor.SpanFrom(m),
				"backslash not followed by a line break")
			lx.emit(token.Invalid, "\\", m)

		case b == '#':
			lx.scanComment()

		case b == '"' || b == '\'':
			lx.scanString(lx.cursor.Mark(), "")

		case isDec(b):
			lx.scanNumber()

		case b == '.' && isDec(lx.cursor.PeekAt(1)):
			lx.scanNumber()

		case isIdentStartByte(b) || b >= utf8RuneSelf:
			lx.scanIdentOrPrefixedString()

		default:
			lx.scanOperatorOrPunct()
		}
	}
	lx.finish()
	return lx.toks
}

// beginLine обрабатывает начало физической строки вне скобок: меряет
// отступ, обрабатывает пустые и комментарные строки, выдаёт Indent/Dedent.
func (lx *Lexer) beginLine() {
	m := lx.cursor.Mark()
	width := 0
	ts := lx.tabSize()

measure:
	for {
		switch lx.cursor.Peek() {
		case ' ':
			width++
		case '\t':
			width = (width/ts + 1) * ts
		case '\f':
			width = 0
		default:
			break measure
		}
		lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		// Файл закончился пробельной строкой: токенов она не даёт.
		return
	}

	switch lx.cursor.Peek() {
	case '\n':
		// Пустая строка: только NL.
		nlMark := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.emitNewlineToken(token.NL, "\n", nlMark)
		return
	case '#':
		// Комментарная строка: Comment + NL, без Indent/Dedent.
		lx.scanComment()
		if lx.cursor.Peek() == '\n' {
			nlMark := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.emitNewlineToken(token.NL, "\n", nlMark)
		}
		return
	}

	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.emit(token.Indent, lx.cursor.Text(m), m)
	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			here := lx.cursor.Mark()
			lx.emit(token.Dedent, "", here)
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.report(diag.LexInconsistentDedent, lx.cursor.SpanFrom(m),
				"unindent does not match any outer indentation level")
		}
	}
	lx.atLineStart = false
}

// scanLineBreak выдаёт Newline или NL в зависимости от контекста.
func (lx *Lexer) scanLineBreak() {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	switch {
	case lx.parenDepth > 0:
		lx.emitNewlineToken(token.NL, "\n", m)
	case lx.lineHasContent:
		lx.emitNewlineToken(token.Newline, "\n", m)
		lx.lineHasContent = false
		lx.atLineStart = true
	default:
		lx.emitNewlineToken(token.NL, "\n", m)
		lx.atLineStart = true
	}
}

// finish закрывает поток: синтетический Newline для файла без перевода
// строки в конце, затем Dedent'ы и EndMarker.
func (lx *Lexer) finish() {
	endRow := lx.cursor.Row
	if lx.lineHasContent {
		m := lx.cursor.Mark()
		lx.emitNewlineToken(token.Newline, "", m)
		lx.lineHasContent = false
		endRow++
	} else if lx.cursor.Off != lx.cursor.LineStart {
		// Хвост без контента (пробелы); ряд всё равно завершён.
		endRow++
	}

	endPos := source.Pos{Row: endRow, Col: 0}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.toks = append(lx.toks, token.Token{
			Kind:  token.Dedent,
			Start: endPos,
			End:   endPos,
			Span:  source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		})
	}
	lx.toks = append(lx.toks, token.Token{
		Kind:  token.EndMarker,
		Start: endPos,
		End:   endPos,
		Span:  source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
	})
}

func (lx *Lexer) skipBlanks() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) scanComment() {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.emit(token.Comment, lx.cursor.Text(m), m)
}

// emit создаёт токен от метки до текущей позиции курсора.
func (lx *Lexer) emit(kind token.Kind, text string, m Mark) {
	lx.toks = append(lx.toks, token.Token{
		Kind:  kind,
		Text:  text,
		Start: lx.cursor.PosFrom(m),
		End:   lx.cursor.Pos(),
		Span:  lx.cursor.SpanFrom(m),
		Line:  lx.file.GetLine(m.row),
	})
	if kind != token.Comment && kind != token.Indent && kind != token.Dedent {
		lx.lineHasContent = true
	}
}

// emitNewlineToken записывает токен перевода строки. Конец фиксируется в
// координатах его собственного ряда (row, col+1) — конвенция хостового
// токенизатора, на которую опирается арифметика untokenize.
func (lx *Lexer) emitNewlineToken(kind token.Kind, text string, m Mark) {
	start := lx.cursor.PosFrom(m)
	lx.toks = append(lx.toks, token.Token{
		Kind:  kind,
		Text:  text,
		Start: start,
		End:   source.Pos{Row: start.Row, Col: start.Col + uint32(len(text))},
		Span:  lx.cursor.SpanFrom(m),
		Line:  lx.file.GetLine(m.row),
	})
}
