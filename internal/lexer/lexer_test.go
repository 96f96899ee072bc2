package lexer_test

import (
	"testing"

	"striphints/internal/diag"
	"striphints/internal/lexer"
	"striphints/internal/source"
	"striphints/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	codes []diag.Code
	msgs  []string
}

func (r *testReporter) Report(code diag.Code, span source.Span, msg string) {
	r.codes = append(r.codes, code)
	r.msgs = append(r.msgs, msg)
}

func (r *testReporter) has(code diag.Code) bool {
	for _, c := range r.codes {
		if c == code {
			return true
		}
	}
	return false
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(t *testing.T, input string) (*lexer.Lexer, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual("test.py", []byte(input))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	return lx, reporter
}

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(t, input)
	tokens := lx.Tokenize()

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokens, reporter.msgs)
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func TestSimpleStatement(t *testing.T) {
	expectKinds(t, "x = 1\n", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
	})
}

func TestMissingTrailingNewline(t *testing.T) {
	toks := expectKinds(t, "x = 1", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
	})
	if toks[3].Text != "" {
		t.Errorf("synthetic newline must have empty text, got %q", toks[3].Text)
	}
}

func TestBlankLineIsNL(t *testing.T) {
	expectKinds(t, "x = 1\n\ny = 2\n", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline,
		token.NL,
		token.Name, token.Op, token.Number, token.Newline,
		token.EndMarker,
	})
}

func TestBreakInsideBracketsIsNL(t *testing.T) {
	expectKinds(t, "x = (1,\n2)\n", []token.Kind{
		token.Name, token.Op, token.Op, token.Number, token.Op,
		token.NL,
		token.Number, token.Op, token.Newline, token.EndMarker,
	})
}

func TestCommentOnlyLine(t *testing.T) {
	expectKinds(t, "# hi\nx = 1\n", []token.Kind{
		token.Comment, token.NL,
		token.Name, token.Op, token.Number, token.Newline,
		token.EndMarker,
	})
}

func TestIndentDedent(t *testing.T) {
	toks := expectKinds(t, "def f(x):\n    return x\n", []token.Kind{
		token.Name, token.Name, token.Op, token.Name, token.Op, token.Op, token.Newline,
		token.Indent, token.Name, token.Name, token.Newline,
		token.Dedent, token.EndMarker,
	})
	if toks[7].Text != "    " {
		t.Errorf("indent must carry the leading whitespace, got %q", toks[7].Text)
	}
}

func TestNestedIndent(t *testing.T) {
	input := "if a:\n    if b:\n        pass\n"
	expectKinds(t, input, []token.Kind{
		token.Name, token.Name, token.Op, token.Newline,
		token.Indent, token.Name, token.Name, token.Op, token.Newline,
		token.Indent, token.Name, token.Newline,
		token.Dedent, token.Dedent, token.EndMarker,
	})
}

func TestBackslashContinuation(t *testing.T) {
	// Продолжение строки не даёт токена; Newline только в конце.
	expectKinds(t, "x = \\\n1\n", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
	})
}

func TestLoneBackslash(t *testing.T) {
	lx, reporter := makeTestLexer(t, "x = \\ 1\n")
	lx.Tokenize()
	if !reporter.has(diag.LexBadContinuation) {
		t.Errorf("expected lex-bad-continuation, got %v", reporter.msgs)
	}
}

func TestTwoByteOperators(t *testing.T) {
	toks := expectKinds(t, "def f() -> int:\n    pass\n", []token.Kind{
		token.Name, token.Name, token.Op, token.Op, token.Op, token.Name, token.Op, token.Newline,
		token.Indent, token.Name, token.Newline,
		token.Dedent, token.EndMarker,
	})
	if toks[4].Text != "->" {
		t.Errorf("expected arrow, got %q", toks[4].Text)
	}
}

func TestWalrusAndAugmented(t *testing.T) {
	toks := expectKinds(t, "x := y\n", []token.Kind{
		token.Name, token.Op, token.Name, token.Newline, token.EndMarker,
	})
	if toks[1].Text != ":=" {
		t.Errorf("expected walrus, got %q", toks[1].Text)
	}
	toks = expectKinds(t, "x **= 2\n", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
	})
	if toks[1].Text != "**=" {
		t.Errorf("expected **=, got %q", toks[1].Text)
	}
}

func TestStringForms(t *testing.T) {
	cases := []struct {
		input string
		text  string
	}{
		{`s = "abc"` + "\n", `"abc"`},
		{`s = ''` + "\n", `''`},
		{`s = r"a\b"` + "\n", `r"a\b"`},
		{`s = f"{x}"` + "\n", `f"{x}"`},
		{`s = b'0'` + "\n", `b'0'`},
		{`s = "a\"b"` + "\n", `"a\"b"`},
	}
	for _, c := range cases {
		toks := expectKinds(t, c.input, []token.Kind{
			token.Name, token.Op, token.String, token.Newline, token.EndMarker,
		})
		if toks[2].Text != c.text {
			t.Errorf("input %q: expected string %q, got %q", c.input, c.text, toks[2].Text)
		}
	}
}

func TestTripleQuotedString(t *testing.T) {
	input := "s = \"\"\"a\nb\"\"\"\n"
	toks := expectKinds(t, input, []token.Kind{
		token.Name, token.Op, token.String, token.Newline, token.EndMarker,
	})
	if toks[2].Text != "\"\"\"a\nb\"\"\"" {
		t.Errorf("triple-quoted text mismatch: %q", toks[2].Text)
	}
	if toks[2].Start.Row != 1 || toks[2].End.Row != 2 {
		t.Errorf("triple-quoted rows: start %d end %d", toks[2].Start.Row, toks[2].End.Row)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(t, "s = \"abc\n")
	lx.Tokenize()
	if !reporter.has(diag.LexUnterminatedString) {
		t.Errorf("expected lex-unterminated-string, got %v", reporter.msgs)
	}
}

func TestNumbers(t *testing.T) {
	cases := []string{"0x1f", "0o17", "0b101", "1_000", "3.14", ".5", "1e10", "2.5e-3", "4j"}
	for _, num := range cases {
		toks := expectKinds(t, "x = "+num+"\n", []token.Kind{
			token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
		})
		if toks[2].Text != num {
			t.Errorf("expected number %q, got %q", num, toks[2].Text)
		}
	}
}

func TestInconsistentDedent(t *testing.T) {
	lx, reporter := makeTestLexer(t, "if a:\n    pass\n  pass\n")
	lx.Tokenize()
	if !reporter.has(diag.LexInconsistentDedent) {
		t.Errorf("expected lex-inconsistent-dedent, got %v", reporter.msgs)
	}
}

func TestKeywordsAreNames(t *testing.T) {
	toks := expectKinds(t, "def f():\n    pass\n", []token.Kind{
		token.Name, token.Name, token.Op, token.Op, token.Op, token.Newline,
		token.Indent, token.Name, token.Newline,
		token.Dedent, token.EndMarker,
	})
	if toks[0].Text != "def" {
		t.Errorf("keyword def must be a Name token, got %q", toks[0].Text)
	}
}

func TestPositions(t *testing.T) {
	lx, _ := makeTestLexer(t, "x = 1\n")
	toks := lx.Tokenize()
	x := toks[0]
	if x.Start.Row != 1 || x.Start.Col != 0 || x.End.Col != 1 {
		t.Errorf("x position: start %d:%d end %d:%d", x.Start.Row, x.Start.Col, x.End.Row, x.End.Col)
	}
	nl := toks[3]
	if nl.Start.Col != 5 || nl.End.Col != 6 || nl.End.Row != 1 {
		t.Errorf("newline records its end on its own row: start %d:%d end %d:%d",
			nl.Start.Row, nl.Start.Col, nl.End.Row, nl.End.Col)
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	expectKinds(t, "имя = 1\n", []token.Kind{
		token.Name, token.Op, token.Number, token.Newline, token.EndMarker,
	})
}
