package fix

import (
	"errors"
	"fmt"
	"os"

	"arialint/internal/source"
)

var (
	// ErrNoChanges is returned when a write is requested for a result that
	// changed nothing.
	ErrNoChanges = errors.New("no applicable fixes found")
	// ErrVirtualFile is returned when the target snippet has no file on disk.
	ErrVirtualFile = errors.New("target file is virtual")
)

// WriteFile stores res.Text over the file it was generated from, keeping the
// file mode.
func WriteFile(file *source.File, res Result) error {
	if file == nil {
		return fmt.Errorf("fix: file is nil")
	}
	if !res.Changed() {
		return ErrNoChanges
	}
	if file.Flags&source.FileVirtual != 0 {
		return fmt.Errorf("%s: %w", file.Path, ErrVirtualFile)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(file.Path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(file.Path, []byte(res.Text), mode); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	return nil
}
