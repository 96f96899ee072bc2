package tokenlist

import (
	"strings"

	"striphints/internal/token"
)

// List is a view over a contiguous range of an arena's tokens.
type List struct {
	arena *Arena
	lo    int
	hi    int
}

// Len returns the number of tokens in the view.
func (l List) Len() int {
	return l.hi - l.lo
}

// Empty reports whether the view holds no tokens.
func (l List) Empty() bool {
	return l.Len() == 0
}

// At returns a pointer to the i-th token of the view (0-based).
func (l List) At(i int) *token.Token {
	return &l.arena.toks[l.lo+i]
}

// Slice returns the sub-view [i, j) of this view.
func (l List) Slice(i, j int) List {
	return List{arena: l.arena, lo: l.lo + i, hi: l.lo + j}
}

// First returns the first token, or nil for an empty view.
func (l List) First() *token.Token {
	if l.Empty() {
		return nil
	}
	return l.At(0)
}

// Last returns the last token, or nil for an empty view.
func (l List) Last() *token.Token {
	if l.Empty() {
		return nil
	}
	return l.At(l.Len() - 1)
}

// Filter returns pointers to the tokens whose kind is not in skip, in
// order. This is how statement shapes are matched without tripping over
// line structure.
func (l List) Filter(skip ...token.Kind) []*token.Token {
	out := make([]*token.Token, 0, l.Len())
	for i := l.lo; i < l.hi; i++ {
		t := &l.arena.toks[i]
		skipped := false
		for _, k := range skip {
			if t.Kind == k {
				skipped = true
				break
			}
		}
		if !skipped {
			out = append(out, t)
		}
	}
	return out
}

// Contains reports whether any token in the view has the given kind.
func (l List) Contains(kind token.Kind) bool {
	for i := l.lo; i < l.hi; i++ {
		if l.arena.toks[i].Kind == kind {
			return true
		}
	}
	return false
}

// IndexOf returns the view index of the first token matching kind and
// text, or -1.
func (l List) IndexOf(kind token.Kind, text string) int {
	for i := l.lo; i < l.hi; i++ {
		if l.arena.toks[i].Is(kind, text) {
			return i - l.lo
		}
	}
	return -1
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteString("List[")
	for i := l.lo; i < l.hi; i++ {
		if i > l.lo {
			sb.WriteString(" ")
		}
		sb.WriteString(l.arena.toks[i].String())
	}
	sb.WriteString("]")
	return sb.String()
}
