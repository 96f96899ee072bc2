package driver

import (
	"striphints/internal/diag"
	"striphints/internal/source"
	"striphints/internal/stripper"
	"striphints/internal/tokenlist"
)

// Options задаёт полную конфигурацию одного прогона стриппера.
type Options struct {
	stripper.Options

	// Validate re-lexes the output and checks bracket balance; failures
	// land in the result Bag with validate-space codes.
	Validate bool

	// MaxDiagnostics ограничивает Bag; <=0 — значение по умолчанию.
	MaxDiagnostics int
}

// Result is the outcome of stripping one input.
type Result struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Output  string
	// Changed compares against a re-serialization of the untouched token
	// stream, not against the raw input: serialization alone can alter
	// spacing, and that must not count as a change.
	Changed bool
	Bag     *diag.Bag
}

// StripFile strips annotations from the file at path. An error return is
// either I/O or a fatal structural failure (*stripper.Error); lexical and
// validation problems are reported through the result's Bag instead.
func StripFile(path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return stripLoaded(fs, fs.Get(fileID), opts)
}

// StripString strips annotations from code held in a string.
func StripString(name, code string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual(name, []byte(code))
	if err != nil {
		return nil, err
	}
	return stripLoaded(fs, fs.Get(fileID), opts)
}

func stripLoaded(fs *source.FileSet, file *source.File, opts Options) (*Result, error) {
	tr := tokenizeLoaded(fs, file, opts.MaxDiagnostics)
	res := &Result{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     tr.Bag,
	}
	if tr.Bag.HasErrors() {
		// Вход не токенизируется; стричь нечего.
		return res, nil
	}

	arena := tokenlist.NewArena(tr.Tokens)

	// Baseline до модификаций, для Changed.
	baseline, err := tokenlist.Untokenize(arena)
	if err != nil {
		return res, err
	}

	st := stripper.New(opts.Options)
	if err := st.Strip(arena, file.Path); err != nil {
		if se, ok := err.(*stripper.Error); ok {
			d := diag.NewError(se.Code, se.Span, se.Msg)
			if se.Line != "" {
				d = d.WithNote(se.Span, "in: "+se.Line)
			}
			tr.Bag.Add(d)
		}
		return res, err
	}

	output, err := tokenlist.Untokenize(arena)
	if err != nil {
		return res, err
	}
	res.Output = output
	res.Changed = output != baseline

	if opts.Validate {
		validateOutput(file.Path, output, tr.Bag)
	}
	return res, nil
}
