package driver

import (
	"fmt"
	"io"

	"arialint/internal/source"
)

// loadTarget reads path (or stdin when path is "-") into a fresh FileSet.
func loadTarget(path string, stdin io.Reader) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", StdinName, err)
		}
		id := fs.AddNormalized(StdinName, content, source.FileVirtual)
		return fs, fs.Get(id), nil
	}
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	return fs, fs.Get(id), nil
}
