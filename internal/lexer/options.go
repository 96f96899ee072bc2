package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/source"
)

// Reporter — тонкий интерфейс, чтобы не тянуть весь diag сюда.
// Лексер только вызывает его; форматирует диагностику внешний слой.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	// Reporter может быть nil — тогда ошибки игнорируем, но продолжаем
	// лексить (деградация вместо остановки).
	Reporter Reporter
	// TabSize is the tab stop width for indentation comparison. Zero
	// means the host language default of 8.
	TabSize int
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}

func (lx *Lexer) tabSize() int {
	if lx.opts.TabSize > 0 {
		return lx.opts.TabSize
	}
	return 8
}
