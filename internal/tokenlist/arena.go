package tokenlist

import (
	"striphints/internal/token"
)

// Arena owns the token storage for one input.
type Arena struct {
	toks []token.Token
}

// NewArena takes ownership of the token slice and runs the nesting tracker
// over it: depth increments immediately on an opening bracket and
// decrements on the token after the matching close, so a closer reports
// the depth of its own contents. Unbalanced input is not an error; depth
// may go negative or never return to zero, and level-filtered matching
// then simply finds nothing.
func NewArena(toks []token.Token) *Arena {
	depth := 0
	lower := false
	for i := range toks {
		if lower {
			depth--
			lower = false
		}
		if toks[i].Kind == token.Op {
			switch toks[i].Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				lower = true // понижаем на следующем токене
			}
		}
		toks[i].Nesting = depth
	}
	return &Arena{toks: toks}
}

// Len returns the number of tokens in the arena.
func (a *Arena) Len() int {
	return len(a.toks)
}

// At returns a pointer to the i-th token. The pointer stays valid for the
// arena's lifetime.
func (a *Arena) At(i int) *token.Token {
	return &a.toks[i]
}

// All returns a List spanning the whole arena.
func (a *Arena) All() List {
	return List{arena: a, lo: 0, hi: len(a.toks)}
}
