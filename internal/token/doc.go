// Package token defines the lexical token model for Python source.
// Invariants:
//   - Token.Start/End are recorded once by the lexer and never change,
//     even when Text is blanked; the untokenizer relies on this to keep
//     line and column layout stable.
//   - Nesting is assigned once when tokens enter an arena: it increments
//     on '(' '[' '{' and decrements on the token after the matching close,
//     so a closer reports the depth of its own contents.
//   - Keywords are plain Name tokens; IsPythonKeyword inspects the text.
package token
