package stripper_test

import (
	"errors"
	"strings"
	"testing"

	"striphints/internal/diag"
	"striphints/internal/lexer"
	"striphints/internal/source"
	"striphints/internal/stripper"
	"striphints/internal/tokenlist"
)

func makeArena(t *testing.T, src string) *tokenlist.Arena {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.py", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	lx := lexer.New(fs.Get(id), lexer.Options{})
	return tokenlist.NewArena(lx.Tokenize())
}

// stripSource прогоняет исходник через весь конвейер и возвращает результат
func stripSource(t *testing.T, src string, opts stripper.Options) string {
	t.Helper()
	arena := makeArena(t, src)
	if err := stripper.New(opts).Strip(arena, "test.py"); err != nil {
		t.Fatalf("Strip(%q): %v", src, err)
	}
	out, err := tokenlist.Untokenize(arena)
	if err != nil {
		t.Fatalf("Untokenize: %v", err)
	}
	return out
}

func stripErr(t *testing.T, src string, opts stripper.Options) error {
	t.Helper()
	arena := makeArena(t, src)
	return stripper.New(opts).Strip(arena, "test.py")
}

func TestHeaderSpaces(t *testing.T) {
	got := stripSource(t, "def f(x: int, y: str = \"a\") -> bool:\n    return x\n", stripper.Options{})
	want := "def f(x     , y      = \"a\")        :\n    return x\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestHeaderToEmpty(t *testing.T) {
	got := stripSource(t, "def f(x: int, y: str = \"a\") -> bool:\n    return x\n",
		stripper.Options{ToEmpty: true})
	want := "def f(x , y  = \"a\")  :\n    return x\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestAnnotationOnlyBecomesComment(t *testing.T) {
	got := stripSource(t, "x: int\n", stripper.Options{})
	if got != "#x: int\n" {
		t.Errorf("got %q, want %q", got, "#x: int\n")
	}
}

func TestAnnotatedAssignment(t *testing.T) {
	got := stripSource(t, "x: int = 5\n", stripper.Options{})
	if got != "x      = 5\n" {
		t.Errorf("got %q, want %q", got, "x      = 5\n")
	}

	got = stripSource(t, "x: int = 5\n", stripper.Options{ToEmpty: true})
	if got != "x  = 5\n" {
		t.Errorf("to-empty: got %q, want %q", got, "x  = 5\n")
	}
}

func TestLambdaAssignmentUntouched(t *testing.T) {
	src := "f = lambda a, b: a + b\n"
	if got := stripSource(t, src, stripper.Options{}); got != src {
		t.Errorf("lambda assignment must survive: %q", got)
	}
}

func TestLambdaDefaultInsideDef(t *testing.T) {
	src := "def f(g=lambda x: x, y: int = 2):\n    pass\n"
	got := stripSource(t, src, stripper.Options{})
	if !strings.Contains(got, "lambda x: x") {
		t.Errorf("lambda default must keep its colon: %q", got)
	}
	if strings.Contains(got, "int") {
		t.Errorf("parameter annotation must be erased: %q", got)
	}
}

func TestMultilineReturnAnnotationColonMove(t *testing.T) {
	src := "def f(x) -> Dict[int,\n                 str]:\n    pass\n"
	got := stripSource(t, src, stripper.Options{})

	gotLines := strings.Split(got, "\n")
	srcLines := strings.Split(src, "\n")
	if len(gotLines) != len(srcLines) {
		t.Fatalf("line count must survive the repair: got %d, want %d\n%q",
			len(gotLines), len(srcLines), got)
	}
	if !strings.HasPrefix(gotLines[0], "def f(x):") {
		t.Errorf("suite colon must move onto the closing paren: %q", gotLines[0])
	}
	if strings.Contains(got, "Dict") {
		t.Errorf("annotation must be erased: %q", got)
	}
	if !strings.Contains(got, "pass") {
		t.Errorf("suite must survive: %q", got)
	}
}

func TestMultilineReturnAnnotationNoColonMove(t *testing.T) {
	src := "def f(x) -> Dict[int,\n                 str]:\n    pass\n"
	err := stripErr(t, src, stripper.Options{NoColonMove: true})
	var se *stripper.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *stripper.Error, got %v", err)
	}
	if se.Code != diag.StripBreakInErasedSpan {
		t.Errorf("expected StripBreakInErasedSpan, got %v", se.Code)
	}
}

func TestMultilineReturnAnnotationStripNL(t *testing.T) {
	src := "def f(x) -> Dict[int,\n                 str]:\n    pass\n"
	got := stripSource(t, src, stripper.Options{StripNL: true})
	if strings.Count(got, "\n") >= strings.Count(src, "\n") {
		t.Errorf("strip-nl must collapse the annotation's lines:\n%q", got)
	}
	if !strings.Contains(got, "def f(x)") || !strings.Contains(got, ":") {
		t.Errorf("header must survive with its own colon: %q", got)
	}
}

func TestMultilineAnnassignEqualMove(t *testing.T) {
	src := "x: Dict[int,\n        str] = {}\n"
	got := stripSource(t, src, stripper.Options{})

	if strings.Count(got, "\n") != strings.Count(src, "\n") {
		t.Errorf("line count must survive the equal move:\n in: %q\nout: %q", src, got)
	}
	if !strings.Contains(got, "= {}") {
		t.Errorf("assigned value must survive: %q", got)
	}
	if strings.Contains(got, "Dict") {
		t.Errorf("annotation must be erased: %q", got)
	}
}

func TestMultilineAnnassignNoEqualMove(t *testing.T) {
	src := "x: Dict[int,\n        str] = {}\n"
	err := stripErr(t, src, stripper.Options{NoEqualMove: true})
	var se *stripper.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *stripper.Error, got %v", err)
	}
	if se.Code != diag.StripBreakInErasedSpan {
		t.Errorf("expected StripBreakInErasedSpan, got %v", se.Code)
	}
}

func TestSemicolonStatements(t *testing.T) {
	got := stripSource(t, "x: int = 1; y: str = 2\n", stripper.Options{})
	want := "x      = 1; y      = 2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDottedAndSubscriptTargets(t *testing.T) {
	got := stripSource(t, "obj.attr: int = 5\n", stripper.Options{})
	if got != "obj.attr      = 5\n" {
		t.Errorf("dotted: got %q", got)
	}

	got = stripSource(t, "d[\"k\"]: int = 5\n", stripper.Options{})
	if got != "d[\"k\"]      = 5\n" {
		t.Errorf("subscript: got %q", got)
	}
}

func TestSliceAssignmentUntouched(t *testing.T) {
	src := "x[1:2] = y\n"
	if got := stripSource(t, src, stripper.Options{}); got != src {
		t.Errorf("slice assignment must survive: %q", got)
	}
}

func TestKeywordStatementsUntouched(t *testing.T) {
	cases := []string{
		"if x: pass\n",
		"for k in d: pass\n",
		"while a: b\n",
		"return x\n",
		"else: pass\n",
	}
	for _, src := range cases {
		if got := stripSource(t, src, stripper.Options{}); got != src {
			t.Errorf("keyword statement must survive:\n in: %q\nout: %q", src, got)
		}
	}
}

func TestOnlyDefs(t *testing.T) {
	src := "x: int = 1\ndef f(y: str) -> int:\n    return y\n"
	got := stripSource(t, src, stripper.Options{OnlyDefs: true})
	if !strings.Contains(got, "x: int = 1") {
		t.Errorf("only-defs must leave variables alone: %q", got)
	}
	if strings.Contains(got, "str") || strings.Contains(got, "->") {
		t.Errorf("only-defs must still strip headers: %q", got)
	}
}

func TestOnlyAssigns(t *testing.T) {
	src := "x: int = 1\ndef f(y: str) -> int:\n    return y\n"
	got := stripSource(t, src, stripper.Options{OnlyAssigns: true})
	if strings.Contains(got, "x: int") {
		t.Errorf("only-assigns must strip variables: %q", got)
	}
	if !strings.Contains(got, "y: str") || !strings.Contains(got, "-> int") {
		t.Errorf("only-assigns must leave headers alone: %q", got)
	}
}

func TestIdempotence(t *testing.T) {
	sources := []string{
		"def f(x: int, y: str = \"a\") -> bool:\n    return x\n",
		"x: int = 5\n",
		"x: int\n",
		"x: Dict[int,\n        str] = {}\n",
	}
	for _, src := range sources {
		once := stripSource(t, src, stripper.Options{})
		twice := stripSource(t, once, stripper.Options{})
		if once != twice {
			t.Errorf("stripping must be idempotent:\n  src: %q\n once: %q\ntwice: %q",
				src, once, twice)
		}
	}
}

func TestNestedDefaultCommas(t *testing.T) {
	// Запятые внутри скобок значения по умолчанию не делят параметры.
	src := "def f(x: int = max(1, 2), y: str = \"b\"):\n    pass\n"
	got := stripSource(t, src, stripper.Options{})
	if !strings.Contains(got, "max(1, 2)") {
		t.Errorf("default value must survive intact: %q", got)
	}
	if strings.Contains(got, "int") || strings.Contains(got, "str") {
		t.Errorf("annotations must be erased: %q", got)
	}
}

func TestErrorMessageCarriesLocation(t *testing.T) {
	src := "def f(x) -> Dict[int,\n                 str]:\n    pass\n"
	err := stripErr(t, src, stripper.Options{NoColonMove: true})
	var se *stripper.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *stripper.Error, got %v", err)
	}
	if se.Path != "test.py" || se.Row == 0 {
		t.Errorf("error must name the file and row: %+v", se)
	}
	if !strings.Contains(se.Error(), "test.py") {
		t.Errorf("rendered message must include the path: %q", se.Error())
	}
}
