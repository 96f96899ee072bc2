package tokenlist

import (
	"slices"

	"striphints/internal/token"
)

// SepPlacement controls where the delimiter token goes in a split result.
type SepPlacement uint8

const (
	// SepRight attaches the delimiter to the fragment on its right.
	SepRight SepPlacement = iota
	// SepLeft attaches the delimiter to the fragment on its left.
	SepLeft
	// SepIsolated puts each delimiter into its own singleton fragment.
	SepIsolated
	// SepDrop omits delimiters from the fragments entirely. They are
	// still returned in the separator list, which is how the header
	// stripper gets hold of the ')' it may need to relocate.
	SepDrop
)

// Level is a convenience for SplitOptions.OnlyNesting.
func Level(n int) *int {
	return &n
}

// SplitOptions configure List.Split. A token is a delimiter when it
// matches any of Kinds or any of Texts (all of them when Conjunct is set)
// while sitting at OnlyNesting, if a level is given.
type SplitOptions struct {
	Kinds       []token.Kind
	Texts       []string
	Conjunct    bool
	OnlyNesting *int
	// MaxSplit stops creating new splits after N matches; the remainder
	// becomes one final fragment. Zero means unlimited.
	MaxSplit  int
	Placement SepPlacement
	// NoEmpty suppresses zero-length fragments from the result.
	NoEmpty bool
}

func (o *SplitOptions) matches(t *token.Token) bool {
	if o.OnlyNesting != nil && t.Nesting != *o.OnlyNesting {
		return false
	}
	kindHit := len(o.Kinds) > 0 && slices.Contains(o.Kinds, t.Kind)
	textHit := len(o.Texts) > 0 && slices.Contains(o.Texts, t.Text)
	if o.Conjunct {
		return (len(o.Kinds) == 0 || kindHit) && (len(o.Texts) == 0 || textHit) &&
			(len(o.Kinds) > 0 || len(o.Texts) > 0)
	}
	return kindHit || textHit
}

// Split partitions the view into maximal runs separated at every matching
// token. It returns the fragments and the delimiter tokens in call order.
// Concatenating the fragments (with delimiters, in any placement except
// SepDrop) reproduces the view's token sequence exactly; every stripping
// step depends on that losslessness.
func (l List) Split(opts SplitOptions) ([]List, []*token.Token) {
	var result []List
	var seps []*token.Token

	last := 0
	splits := 0
	i := -1
	for {
		i++
		if i == l.Len() || (opts.MaxSplit > 0 && splits >= opts.MaxSplit) {
			result = append(result, l.Slice(last, l.Len()))
			break
		}

		t := l.At(i)
		if !opts.matches(t) {
			continue
		}
		splits++
		seps = append(seps, t)
		switch opts.Placement {
		case SepDrop:
			result = append(result, l.Slice(last, i))
			last = i + 1
		case SepIsolated:
			result = append(result, l.Slice(last, i))
			result = append(result, l.Slice(i, i+1))
			last = i + 1
		case SepLeft:
			result = append(result, l.Slice(last, i+1))
			last = i + 1
		default: // SepRight
			result = append(result, l.Slice(last, i))
			last = i
		}
	}

	if opts.NoEmpty {
		kept := result[:0]
		for _, frag := range result {
			if !frag.Empty() {
				kept = append(kept, frag)
			}
		}
		result = kept
	}
	return result, seps
}
