package token_test

import (
	"testing"

	"striphints/internal/token"
)

func TestBlankSpaces(t *testing.T) {
	tok := token.Token{Kind: token.Name, Text: "List"}
	tok.Blank(token.BlankOptions{})
	if tok.Text != "    " {
		t.Errorf("expected four spaces, got %q", tok.Text)
	}
}

func TestBlankRuneWidth(t *testing.T) {
	// Ширина меряется в рунах, не в байтах.
	tok := token.Token{Kind: token.Name, Text: "имя"}
	tok.Blank(token.BlankOptions{})
	if tok.Text != "   " {
		t.Errorf("expected three spaces for three runes, got %q", tok.Text)
	}
}

func TestBlankEmpty(t *testing.T) {
	tok := token.Token{Kind: token.Op, Text: "->"}
	tok.Blank(token.BlankOptions{Empty: true})
	if tok.Text != "" {
		t.Errorf("expected empty text, got %q", tok.Text)
	}
}

func TestBlankLeavesStructural(t *testing.T) {
	for _, kind := range []token.Kind{token.NL, token.Newline, token.Indent, token.Dedent, token.EndMarker} {
		tok := token.Token{Kind: kind, Text: "\n"}
		tok.Blank(token.BlankOptions{Empty: true})
		if tok.Text != "\n" {
			t.Errorf("%v: structural token must keep its text, got %q", kind, tok.Text)
		}
	}
}

func TestBlankLeavesComments(t *testing.T) {
	tok := token.Token{Kind: token.Comment, Text: "# note"}
	tok.Blank(token.BlankOptions{})
	if tok.Text != "# note" {
		t.Errorf("comment must survive a default blank, got %q", tok.Text)
	}
}

func TestBlankStripNL(t *testing.T) {
	tok := token.Token{Kind: token.NL, Text: "\n"}
	tok.Blank(token.BlankOptions{StripNL: true})
	if tok.Text != "" {
		t.Errorf("StripNL must erase NL text, got %q", tok.Text)
	}

	logical := token.Token{Kind: token.Newline, Text: "\n"}
	logical.Blank(token.BlankOptions{StripNL: true})
	if logical.Text != "\n" {
		t.Errorf("StripNL must not touch logical newlines, got %q", logical.Text)
	}
}

func TestBlankStripComments(t *testing.T) {
	tok := token.Token{Kind: token.Comment, Text: "# gone"}
	tok.Blank(token.BlankOptions{StripComments: true})
	if tok.Text != "" {
		t.Errorf("StripComments must erase comment text, got %q", tok.Text)
	}
}

func TestIs(t *testing.T) {
	tok := token.Token{Kind: token.Op, Text: ":"}
	if !tok.Is(token.Op, ":") {
		t.Error("Is must match kind and text")
	}
	if tok.Is(token.Op, ",") || tok.Is(token.Name, ":") {
		t.Error("Is must reject a mismatched kind or text")
	}
}

func TestIsPythonKeyword(t *testing.T) {
	for _, kw := range []string{"def", "lambda", "return", "None", "async"} {
		if !token.IsPythonKeyword(kw) {
			t.Errorf("%q must be a keyword", kw)
		}
	}
	for _, ident := range []string{"x", "print", "self", "match", ""} {
		if token.IsPythonKeyword(ident) {
			t.Errorf("%q must not be a keyword", ident)
		}
	}
}
