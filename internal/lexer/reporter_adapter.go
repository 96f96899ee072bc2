package lexer

import (
	"striphints/internal/diag"
	"striphints/internal/source"
)

// ReporterAdapter подключает Bag к тонкому lexer.Reporter.
type ReporterAdapter struct {
	Bag *diag.Bag
}

type bagReporter struct {
	bag *diag.Bag
}

func (r bagReporter) Report(code diag.Code, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	r.bag.Add(diag.NewError(code, span, msg))
}

// Reporter returns the thin reporter backed by the adapter's bag.
func (a *ReporterAdapter) Reporter() Reporter {
	return bagReporter{bag: a.Bag}
}
