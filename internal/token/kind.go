package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Name represents an identifier or keyword token.
	Name
	// Number represents any numeric literal.
	Number
	// String represents a string literal, including prefixes and
	// triple-quoted forms.
	String
	// Op represents an operator or punctuation token.
	Op
	// Comment represents a '#' comment running to end of line.
	Comment
	// NL represents a non-logical line break: blank lines, comment-only
	// lines, and physical breaks inside open brackets.
	NL
	// Newline represents the logical end of a statement line.
	Newline
	// Indent represents an increase of indentation; its text is the
	// leading whitespace of the line.
	Indent
	// Dedent represents a decrease of indentation; its text is empty.
	Dedent
	// EndMarker terminates the token stream.
	EndMarker
)

var kindNames = [...]string{
	Invalid:   "INVALID",
	Name:      "NAME",
	Number:    "NUMBER",
	String:    "STRING",
	Op:        "OP",
	Comment:   "COMMENT",
	NL:        "NL",
	Newline:   "NEWLINE",
	Indent:    "INDENT",
	Dedent:    "DEDENT",
	EndMarker: "ENDMARKER",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsStructural reports whether the token carries line/indent structure
// rather than statement content. Structural tokens are never blanked by
// the default erase operation and are skipped when matching statement
// shapes.
func (k Kind) IsStructural() bool {
	switch k {
	case NL, Newline, Indent, Dedent, EndMarker:
		return true
	default:
		return false
	}
}

// IgnoredKinds is the default skip set when scanning a statement for its
// significant tokens: structure plus comments.
var IgnoredKinds = []Kind{NL, Newline, Indent, Dedent, EndMarker, Comment}
