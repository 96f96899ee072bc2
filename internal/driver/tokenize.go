package driver

import (
	"striphints/internal/diag"
	"striphints/internal/lexer"
	"striphints/internal/source"
	"striphints/internal/token"
)

// DefaultMaxDiagnostics ограничивает размер Bag, если caller не задал свой.
const DefaultMaxDiagnostics = 64

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize загружает файл и возвращает полный поток токенов.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeString токенизирует код из строки (stdin, тесты).
func TokenizeString(name, code string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual(name, []byte(code))
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fs.Get(fileID), maxDiagnostics), nil
}

func tokenizeLoaded(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporterAdapter.Reporter(),
	})
	tokens := lx.Tokenize()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
