package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"arialint/internal/source"
)

func TestWriteFileKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.html")
	if err := os.WriteFile(path, []byte(`<div role="switch"></div>`), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	file := fs.Get(id)

	res := Generate(file.Content, Options{})
	if err := WriteFile(file, res); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `<div role="switch" aria-checked="false"></div>` {
		t.Errorf("written content = %s", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestWriteFileErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("stdin", []byte(`<div role="switch">`)))

	if err := WriteFile(file, GenerateString("<p>")); !errors.Is(err, ErrNoChanges) {
		t.Errorf("expected ErrNoChanges, got %v", err)
	}
	if err := WriteFile(file, Generate(file.Content, Options{})); !errors.Is(err, ErrVirtualFile) {
		t.Errorf("expected ErrVirtualFile, got %v", err)
	}
}
