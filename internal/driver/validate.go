package driver

import (
	"fmt"

	"striphints/internal/diag"
	"striphints/internal/lexer"
	"striphints/internal/source"
	"striphints/internal/token"
)

// validateOutput re-lexes the stripped code and checks that brackets still
// pair up. It cannot prove the output parses, but it catches exactly the
// failure mode blanking can introduce: an erased token sequence that no
// longer tokenizes or leaves a bracket dangling. Problems are reported
// into bag with validate-space codes so callers can tell "your input was
// broken" apart from "we broke the output".
func validateOutput(name, output string, bag *diag.Bag) bool {
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual(name, []byte(output))
	if err != nil {
		bag.Add(diag.NewError(diag.ValidateRelex, source.Span{},
			fmt.Sprintf("stripped output could not be reloaded: %v", err)))
		return false
	}
	file := fs.Get(fileID)

	relexBag := diag.NewBag(DefaultMaxDiagnostics)
	reporterAdapter := &lexer.ReporterAdapter{Bag: relexBag}
	lx := lexer.New(file, lexer.Options{Reporter: reporterAdapter.Reporter()})
	tokens := lx.Tokenize()

	ok := true
	if relexBag.HasErrors() {
		ok = false
		for _, d := range relexBag.Items() {
			if d.Severity < diag.SevError {
				continue
			}
			bag.Add(diag.NewError(diag.ValidateRelex, source.Span{},
				fmt.Sprintf("stripped output does not tokenize: %s", d.Message)))
		}
	}

	if !bracketsBalanced(tokens) {
		ok = false
		bag.Add(diag.NewError(diag.ValidateUnbalanced, source.Span{},
			"stripped output has unbalanced brackets"))
	}
	return ok
}

func bracketsBalanced(tokens []token.Token) bool {
	pairs := map[string]string{")": "(", "]": "[", "}": "{"}
	var stack []string
	for i := range tokens {
		t := &tokens[i]
		if t.Kind != token.Op {
			continue
		}
		switch t.Text {
		case "(", "[", "{":
			stack = append(stack, t.Text)
		case ")", "]", "}":
			if len(stack) == 0 || stack[len(stack)-1] != pairs[t.Text] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
