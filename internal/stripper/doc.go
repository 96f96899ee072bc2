// Package stripper erases type annotations from a token stream in place.
//
// It never parses. The whole approach rests on a few grammar facts:
// function headers and assignment statements are never inside brackets,
// so the delimiters worth looking at (the header parens, commas between
// parameters, the annotation colon, the default-value equal sign) all sit
// at one known nesting level; everything deeper is either copied through
// untouched (default values) or blanked wholesale (annotation bodies).
// A colon at parameter-list level is either an annotation or a lambda
// body start; an equal sign there is always a default value. A name that
// opens a logical line and is immediately followed by a colon is an
// annotated variable.
//
// Tokens are only ever rewritten, never inserted or removed, so the
// serialized output keeps the input's line and column layout. The two
// exceptions are the repair moves: a header colon may migrate onto the
// closing paren, and an annotated assignment's erased line breaks may be
// re-appended after the kept value. Both keep the total line count.
package stripper
