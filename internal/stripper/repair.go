package stripper

import (
	"striphints/internal/diag"
	"striphints/internal/token"
	"striphints/internal/tokenlist"
)

// checkErasedBreaks verifies that a span about to be blanked holds no
// non-logical line break, since after blanking the break would no longer
// be bracket-nested and the output would not tokenize back. When rpar
// and colon are given (return-annotation case) the first break is
// repaired instead: the suite colon migrates onto the closing paren and
// the old colon is erased, so the annotation collapses onto the header
// line while the NL token itself stays and keeps the line count.
func (r *run) checkErasedBreaks(span tokenlist.List, rpar, colon *token.Token) error {
	if r.opts.StripNL && !span.Contains(token.Comment) {
		// NL токены всё равно сотрутся; без комментариев это безопасно.
		return nil
	}
	moved := false
	for i := 0; i < span.Len(); i++ {
		t := span.At(i)
		if t.Kind != token.NL {
			continue
		}
		if !r.opts.NoColonMove && rpar != nil && colon != nil {
			if moved {
				continue
			}
			rpar.Text += ":"
			colon.Text = ""
			moved = true
			continue
		}
		return r.structural(diag.StripBreakInErasedSpan, t,
			"line break inside an erased, unnested part of a type annotation")
	}
	return nil
}
