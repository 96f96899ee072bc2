package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileRecoded indicates the content was transcoded to UTF-8 from the
	// encoding named in a PEP-263 coding cookie.
	FileRecoded
)

// File captures metadata and content for a single source file.
type File struct {
	ID       FileID
	Path     string
	Content  []byte
	LineIdx  []uint32
	Flags    FileFlags
	Encoding string // IANA name from the coding cookie, "" if none
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Pos is a tokenizer position: 1-based row, 0-based byte column.
// This is the convention the untokenizer arithmetic is built on, and it
// must not be confused with LineCol (which is for diagnostics display).
type Pos struct {
	Row uint32
	Col uint32
}
