package source_test

import (
	"strings"
	"testing"

	"striphints/internal/source"
)

func addVirtual(t *testing.T, content string) (*source.FileSet, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.py", []byte(content))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	return fs, fs.Get(id)
}

func TestNormalizeCRLF(t *testing.T) {
	_, f := addVirtual(t, "a = 1\r\nb = 2\r\n")
	if string(f.Content) != "a = 1\nb = 2\n" {
		t.Errorf("CRLF not normalized: %q", f.Content)
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
}

func TestRemoveBOM(t *testing.T) {
	_, f := addVirtual(t, "\ufeffx = 1\n")
	if string(f.Content) != "x = 1\n" {
		t.Errorf("BOM not removed: %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
}

func TestCodingCookie(t *testing.T) {
	raw := append([]byte("# -*- coding: latin-1 -*-\ns = \""), 0xE9)
	raw = append(raw, []byte("\"\n")...)
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.py", raw)
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	f := fs.Get(id)
	if f.Encoding != "iso-8859-1" {
		t.Errorf("expected iso-8859-1, got %q", f.Encoding)
	}
	if f.Flags&source.FileRecoded == 0 {
		t.Error("FileRecoded flag not set")
	}
	if !strings.Contains(string(f.Content), "é") {
		t.Errorf("content not transcoded: %q", f.Content)
	}
}

func TestCodingCookieCanonicalName(t *testing.T) {
	// Encoding хранит каноническое имя, не написание из куки.
	for _, spelling := range []string{"latin-1", "latin_1", "ISO8859-1", "iso-8859-1"} {
		raw := append([]byte("# -*- coding: "+spelling+" -*-\ns = \""), 0xE9)
		raw = append(raw, []byte("\"\n")...)
		fs := source.NewFileSet()
		id, err := fs.AddVirtual("test.py", raw)
		if err != nil {
			t.Fatalf("AddVirtual(%s): %v", spelling, err)
		}
		if got := fs.Get(id).Encoding; got != "iso-8859-1" {
			t.Errorf("cookie %q: Encoding = %q, want iso-8859-1", spelling, got)
		}
	}
}

func TestUTF8CookieIsNoop(t *testing.T) {
	_, f := addVirtual(t, "# coding: utf-8\nx = 1\n")
	if f.Flags&source.FileRecoded != 0 {
		t.Error("utf-8 cookie must not mark the file as recoded")
	}
}

func TestLineCount(t *testing.T) {
	cases := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"x\n", 1},
		{"x", 1},
		{"a\nb\n", 2},
		{"a\nb", 2},
	}
	for _, c := range cases {
		_, f := addVirtual(t, c.content)
		if got := f.LineCount(); got != c.want {
			t.Errorf("LineCount(%q) = %d, want %d", c.content, got, c.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	_, f := addVirtual(t, "one\ntwo\nthree\n")
	cases := []struct {
		line uint32
		want string
	}{
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
		{0, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.line); got != c.want {
			t.Errorf("GetLine(%d) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestResolve(t *testing.T) {
	fs, f := addVirtual(t, "ab\ncd\n")
	start, end := fs.Resolve(source.Span{File: f.ID, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestResolveOffsets(t *testing.T) {
	fs, f := addVirtual(t, "ab\ncd\nef\n")
	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // сам '\n' ещё на своей строке
		{3, 2, 1},
		{4, 2, 2},
		{5, 2, 3},
		{6, 3, 1},
		{9, 4, 1}, // за последним '\n'
	}
	for _, c := range cases {
		got, _ := fs.Resolve(source.Span{File: f.ID, Start: c.off, End: c.off})
		if got.Line != c.line || got.Col != c.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d",
				c.off, got.Line, got.Col, c.line, c.col)
		}
	}
}
