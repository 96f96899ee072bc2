package stripper

import (
	"fmt"

	"striphints/internal/diag"
	"striphints/internal/source"
)

// Error is a fatal structural failure: either the input violated a
// grammar assumption the engine relies on, or erasing an annotation
// would have changed line structure with repair disabled.
type Error struct {
	Code diag.Code
	Path string
	Row  int    // 1-based physical line, 0 when unknown
	Line string // physical line text, "" when unknown
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: %s (line %d of %s)", e.Code.ID(), e.Msg, e.Row, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}
