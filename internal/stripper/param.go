package stripper

import (
	"strings"

	"striphints/internal/token"
	"striphints/internal/tokenlist"
)

// stripParameter erases the annotation of a single function parameter,
// or, with annassign set, of a whole annotated-variable statement (the
// same splitting logic covers both).
func (r *run) stripParameter(param tokenlist.List, level int, annassign bool) error {
	// Один split на первом ":" или "=": что встретилось раньше, то и решает.
	frags, seps := param.Split(tokenlist.SplitOptions{
		Texts:       []string{":", "="},
		OnlyNesting: tokenlist.Level(level),
		MaxSplit:    1,
	})
	if len(frags) == 1 {
		// Just a name, nothing to do.
		return nil
	}
	if seps[0].Text == "=" {
		// Plain default value, no annotation.
		return nil
	}

	// The right part begins with the annotation colon. One more split on
	// "=" decides between a bare annotation and one with a default/value.
	right := frags[1]
	onEqual, _ := right.Split(tokenlist.SplitOptions{
		Texts:       []string{"="},
		OnlyNesting: tokenlist.Level(level),
		MaxSplit:    1,
	})

	if len(onEqual) == 1 && annassign {
		// Declaration without assignment. A fully blanked statement can
		// be invalid (stray continuation punctuation), a comment never is.
		commentOut(param)
		return nil
	}

	typeDef := onEqual[0]
	hasAssign := len(onEqual) > 1

	if annassign && r.opts.NoEqualMove {
		if err := r.checkErasedBreaks(typeDef, nil, nil); err != nil {
			return err
		}
	}

	nlCount := 0
	for i := 0; i < typeDef.Len(); i++ {
		t := typeDef.At(i)
		if t.Kind == token.NL {
			nlCount++
		}
		bo := token.BlankOptions{Empty: r.opts.ToEmpty, StripNL: r.opts.StripNL}
		if annassign && !r.opts.NoEqualMove {
			// Сдвигаем "= ..." вверх: NL в стираемой зоне убираем, а
			// комментарии там ломали бы синтаксис после сдвига.
			bo.StripNL = true
			bo.StripComments = true
		}
		t.Blank(bo)
	}

	// Re-append the erased breaks after the kept value so the total line
	// count survives the equal move.
	if annassign && !r.opts.NoEqualMove && hasAssign && nlCount > 0 {
		last := onEqual[1].Last()
		last.Text += strings.Repeat("\n", nlCount)
	}
	return nil
}

// commentOut turns a declaration-only statement into a comment: the first
// significant token gets a leading '#', and every interior line break
// restarts the comment on the next line.
func commentOut(stmt tokenlist.List) {
	toks := stmt.Filter(token.Newline, token.Indent, token.Dedent, token.EndMarker, token.Comment)
	seenFirst := false
	for _, t := range toks {
		if t.Kind == token.NL {
			if !seenFirst {
				// Leading comment lines already start with '#'.
				continue
			}
			t.Text = "\n#"
		}
		if !seenFirst {
			t.Text = "#" + t.Text
			seenFirst = true
		}
	}
}
