package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"striphints/internal/diag"
	"striphints/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan, color.Bold)
	caretColor      = color.New(color.FgRed, color.Bold)
	gutterColor     = color.New(color.FgHiBlack)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <code>: <Message>
// затем строку-контекст с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d, fs, opts)
	}
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	if (d.Primary == source.Span{}) {
		// Диагностика без позиции (например, про весь файл).
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(f, opts.PathMode, fs.BaseDir())

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)
	printContext(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			if (n.Span == source.Span{}) {
				fmt.Fprintf(w, "  note: %s\n", n.Msg)
				continue
			}
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", path, ns.Line, ns.Col, n.Msg)
		}
	}
}

// printContext выводит строку с кареткой и, если запрошено, соседние строки.
func printContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := start.Line
	last := start.Line
	if opts.Context > 0 {
		ctx := uint32(opts.Context)
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
		last += ctx
	}

	for ln := first; ln <= last; ln++ {
		line := f.GetLine(ln)
		if line == "" && ln != start.Line {
			continue
		}
		gutter := fmt.Sprintf("%5d | ", ln)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s%s\n", gutter, strings.TrimRight(line, "\n"))

		if ln != start.Line {
			continue
		}
		// Каретка по видимой ширине префикса, не по байтам.
		col := int(start.Col) - 1
		if col > len(line) {
			col = len(line)
		}
		pad := runewidth.StringWidth(line[:col])
		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			to := int(end.Col) - 1
			if to > len(line) {
				to = len(line)
			}
			if to > col {
				width = runewidth.StringWidth(line[col:to])
			}
		}
		marks := "^" + strings.Repeat("~", max(width-1, 0))
		if opts.Color {
			marks = caretColor.Sprint(marks)
		}
		fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), marks)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}

func formatPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeRelative, PathModeAuto:
		return f.DisplayPath(baseDir)
	default:
		return f.Path
	}
}
