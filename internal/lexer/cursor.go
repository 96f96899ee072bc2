package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"striphints/internal/source"
)

// Cursor представляет собой позицию в файле. Кроме байтового смещения он
// отслеживает текущую строку, чтобы каждый токен получал позиции
// (строка, колонка) без повторного сканирования.
type Cursor struct {
	File      *source.File
	Off       uint32
	Row       uint32 // 1-based
	LineStart uint32 // byte offset of the current row's first byte
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:      f,
		Off:       0,
		Row:       1,
		LineStart: 0,
	}
}

// EOF проверяет, достигнут ли конец файла.
func (c *Cursor) EOF() bool {
	return c.Off >= uint32(len(c.File.Content))
}

// Peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt читает байт со смещением n от текущего, иначе 0.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= uint32(len(c.File.Content)) {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek2 читает текущий и следующий байт, если есть.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= uint32(len(c.File.Content)) {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump перемещает курсор на один байт вперёд и возвращает прочитанный байт.
// Переводы строк обновляют Row/LineStart, в том числе внутри строковых
// литералов и продолжений.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Row++
		c.LineStart = c.Off
	}
	return b
}

// Mark это метка, чтобы быстро получать Span и Pos читаемого фрагмента.
type Mark struct {
	off       uint32
	row       uint32
	lineStart uint32
}

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, row: c.Row, lineStart: c.LineStart}
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
	}
}

// PosFrom returns the tokenizer position recorded by the mark.
func (c *Cursor) PosFrom(m Mark) source.Pos {
	return source.Pos{Row: m.row, Col: m.off - m.lineStart}
}

// Pos returns the current tokenizer position.
func (c *Cursor) Pos() source.Pos {
	return source.Pos{Row: c.Row, Col: c.Off - c.LineStart}
}

// Text returns the source text between the mark and the cursor.
func (c *Cursor) Text(m Mark) string {
	return string(c.File.Content[m.off:c.Off])
}
