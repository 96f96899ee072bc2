package token

var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {},
	"and": {}, "as": {}, "assert": {}, "async": {}, "await": {},
	"break": {}, "class": {}, "continue": {}, "def": {}, "del": {},
	"elif": {}, "else": {}, "except": {}, "finally": {}, "for": {},
	"from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {},
	"pass": {}, "raise": {}, "return": {}, "try": {}, "while": {},
	"with": {}, "yield": {},
}

// IsPythonKeyword reports whether ident is a reserved word of the host
// language. The bare-name-colon heuristic uses this to reject statements
// like `else:` that start with a keyword rather than a variable.
func IsPythonKeyword(ident string) bool {
	_, ok := pythonKeywords[ident]
	return ok
}
