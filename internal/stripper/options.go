package stripper

// Options control how annotations are erased.
type Options struct {
	// ToEmpty blanks removed text to empty strings instead of same-width
	// spaces. Easier to read, but column layout is not preserved.
	ToEmpty bool

	// StripNL also erases non-logical line breaks inside removed spans.
	// Line numbers then no longer correspond to the input.
	StripNL bool

	// NoColonMove disables relocating the header colon onto the closing
	// paren when a return annotation spans physical lines. With the move
	// disabled that situation is a fatal error.
	NoColonMove bool

	// NoEqualMove disables shifting an annotated assignment's value up
	// when the erased annotation spanned physical lines. With the move
	// disabled that situation is a fatal error.
	NoEqualMove bool

	// OnlyDefs strips function headers only, leaving annotated
	// assignments and bare declarations untouched.
	OnlyDefs bool

	// OnlyAssigns strips annotated assignments and bare declarations
	// only, keeping function header annotations.
	OnlyAssigns bool
}
