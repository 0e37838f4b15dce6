package driver

import (
	"io"

	"arialint/internal/markup"
	"arialint/internal/source"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tags    []markup.Tag
}

// Tokenize scans path ("-" for stdin) into tag records.
func Tokenize(path string, stdin io.Reader) (*TokenizeResult, error) {
	fs, file, err := loadTarget(path, stdin)
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tags:    markup.Tags(file.Content, file.ID),
	}, nil
}
