package stripper

import (
	"striphints/internal/diag"
	"striphints/internal/token"
	"striphints/internal/tokenlist"
)

// Stripper holds stripping options. One instance can process any number
// of inputs, concurrently; per-input state lives in a run.
type Stripper struct {
	opts Options
}

// New returns a Stripper with the given options.
func New(opts Options) *Stripper {
	return &Stripper{opts: opts}
}

// Strip erases annotations from the arena's tokens in place. path is used
// in diagnostics only. A non-nil error is always a *Error and means the
// arena is in an unusable half-modified state.
func (s *Stripper) Strip(arena *tokenlist.Arena, path string) error {
	r := &run{opts: s.opts, path: path}
	return r.strip(arena)
}

type run struct {
	opts Options
	path string
}

func (r *run) strip(arena *tokenlist.Arena) error {
	// Логические строки: NEWLINE/INDENT/DEDENT/ENDMARKER и ";".
	stmts, _ := arena.All().Split(tokenlist.SplitOptions{
		Kinds:     []token.Kind{token.Newline, token.EndMarker, token.Indent, token.Dedent},
		Texts:     []string{";"},
		Placement: tokenlist.SepIsolated,
		NoEmpty:   true,
	})

	for _, stmt := range stmts {
		if !r.opts.OnlyAssigns {
			frags, _ := stmt.Split(tokenlist.SplitOptions{
				Texts:    []string{"def"},
				MaxSplit: 1,
			})
			if len(frags) == 2 {
				if err := r.stripHeader(frags[1]); err != nil {
					return err
				}
				continue
			}
		}
		if r.opts.OnlyDefs {
			continue
		}
		if looksLikeAnnassign(stmt) {
			if err := r.stripParameter(stmt, stmt.At(0).Nesting, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// looksLikeAnnassign reports whether the statement is an annotated
// variable: a non-keyword name, optionally extended by dotted attributes
// and one bracketed subscript, followed by a colon that is not the last
// significant token. Parenthesized targets like `(x): int` are out of
// scope on purpose; recognizing them needs real expression parsing.
func looksLikeAnnassign(stmt tokenlist.List) bool {
	toks := stmt.Filter(token.IgnoredKinds...)
	if len(toks) == 0 || token.IsPythonKeyword(toks[0].Text) {
		return false
	}
	i := 0
	for toks[i].Kind == token.Name {
		i++
		if i >= len(toks) {
			return false
		}
		// var.x.y: int
		if toks[i].Text == "." {
			i++
			if i >= len(toks) {
				return false
			}
			continue
		}
		// d["key"]: int
		if toks[i].Text == "[" {
			for {
				i++
				if i >= len(toks) {
					return false
				}
				if toks[i].Text == "]" && toks[i].Nesting == 1 {
					break
				}
			}
			i++
			if i >= len(toks) {
				return false
			}
		}
		return toks[i].Text == ":" && i != len(toks)-1
	}
	return false
}

func (r *run) structural(code diag.Code, at *token.Token, msg string) error {
	e := &Error{Code: code, Path: r.path, Msg: msg}
	if at != nil {
		e.Row = int(at.Start.Row)
		e.Line = at.Line
		e.Span = at.Span
	}
	return e
}
