package source

type (
	// FileID uniquely identifies a snippet within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a snippet.
	FileFlags uint8
)

const (
	// FileVirtual marks a snippet that did not come from disk (stdin, tests, MCP requests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is one markup snippet together with its line index and content hash.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a snippet.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
