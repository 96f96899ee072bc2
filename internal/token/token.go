package token

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"striphints/internal/source"
)

// Token represents a single source token. Text is the only mutable field:
// the stripping engine erases annotations by rewriting Text in place while
// Start/End keep the original recorded positions.
type Token struct {
	Kind    Kind
	Text    string
	Start   source.Pos
	End     source.Pos
	Span    source.Span
	Line    string // full physical line the token starts on, for diagnostics
	Nesting int    // bracket depth, set once at arena build
}

// BlankOptions control how Blank rewrites a token.
type BlankOptions struct {
	// Empty replaces the text with "" instead of same-width spaces.
	// Spaces keep column layout; empty strings collapse it.
	Empty bool
	// StripNL additionally erases NL tokens (non-logical breaks). This is
	// the only way a Blank call may change the serialized line count.
	StripNL bool
	// StripComments additionally erases Comment tokens.
	StripComments bool
}

// Blank erases the token's text. Structural tokens are left alone unless
// StripNL asks for NL removal; comments unless StripComments. Width is
// measured in runes so multi-byte text blanks to its visual width.
func (t *Token) Blank(opts BlankOptions) {
	if opts.StripNL && t.Kind == NL {
		t.Text = ""
		return
	}
	if opts.StripComments && t.Kind == Comment {
		t.Text = ""
		return
	}
	if t.Kind.IsStructural() || t.Kind == Comment {
		return
	}
	if opts.Empty {
		t.Text = ""
		return
	}
	t.Text = strings.Repeat(" ", utf8.RuneCountInString(t.Text))
}

// Is reports whether the token has the given kind and exact text.
func (t *Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t *Token) String() string {
	return fmt.Sprintf("<%s %q %d:%d>", t.Kind, t.Text, t.Start.Row, t.Start.Col)
}
