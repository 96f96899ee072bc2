package stripper

import (
	"striphints/internal/diag"
	"striphints/internal/token"
	"striphints/internal/tokenlist"
)

// stripHeader processes a function definition's top line. The fragment
// starts at the def token itself.
func (r *run) stripHeader(header tokenlist.List) error {
	level := header.At(0).Nesting + 1
	frags, seps := header.Split(tokenlist.SplitOptions{
		Texts:       []string{"(", ")"},
		OnlyNesting: tokenlist.Level(level),
		MaxSplit:    2,
		Placement:   tokenlist.SepDrop,
	})
	if len(frags) != 3 || len(seps) != 2 || seps[1].Text != ")" {
		return r.structural(diag.StripBadHeaderShape, header.First(),
			"function header does not split into name, parameters and return part")
	}
	rpar := seps[1]
	if err := r.stripParameters(frags[1], level); err != nil {
		return err
	}
	return r.stripReturnPart(frags[2], rpar)
}

// stripParameters splits the parameter list on commas at the list's own
// level and processes each parameter. Commas and colons inside a lambda
// default value must not count, hence the flag; lambda parens are no
// concern since they sit deeper.
func (r *run) stripParameters(params tokenlist.List, level int) error {
	prev := 0
	insideLambda := false
	n := params.Len()
	for i := 0; i < n; i++ {
		t := params.At(i)
		switch {
		case t.Text == "lambda":
			insideLambda = true
		case t.Text == ":" && insideLambda:
			insideLambda = false
		case t.Text == "," && t.Nesting == level && !insideLambda:
			if err := r.stripParameter(params.Slice(prev, i), level, false); err != nil {
				return err
			}
			prev = i + 1
		case i == n-1:
			if err := r.stripParameter(params.Slice(prev, i+1), level, false); err != nil {
				return err
			}
			prev = i + 1
		}
	}
	return nil
}

// stripReturnPart handles everything after the closing paren. The last
// colon in the fragment is the one that starts the suite; the return
// annotation, if any, is everything before it.
func (r *run) stripReturnPart(part tokenlist.List, rpar *token.Token) error {
	if part.Empty() {
		return nil
	}
	var colon *token.Token
	cut := -1
	for i := part.Len() - 1; i >= 0; i-- {
		if part.At(i).Text == ":" {
			colon = part.At(i)
			cut = i
			break
		}
	}
	if colon == nil {
		return r.structural(diag.StripMissingReturnColon, part.First(),
			"no suite colon found after function parameter list")
	}
	spec := part.Slice(0, cut)
	if err := r.checkErasedBreaks(spec, rpar, colon); err != nil {
		return err
	}
	for i := 0; i < spec.Len(); i++ {
		spec.At(i).Blank(token.BlankOptions{Empty: r.opts.ToEmpty, StripNL: r.opts.StripNL})
	}
	return nil
}
