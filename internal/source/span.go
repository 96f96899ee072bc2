package source

import (
	"fmt"
)

type Span struct {
	File  FileID
	Start uint32 // байтовое смещение, включительно
	End   uint32 // байтовое смещение, не включительно
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
