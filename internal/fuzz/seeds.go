package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var snippetSeeds = []string{
	``,
	`<button role="button">Go</button>`,
	`<div role="tab">Tab 1</div>`,
	`<div class="tabs"><div role="tab" aria-selected="true">A</div><div role="tab">B</div></div>`,
	`<div role="checkbox" tabindex="0">Accept</div>`,
	`<div role="slider" aria-valuenow="5"></div>`,
	`<span onclick="go()">Open</span>`,
	`<a href="/x" role="link" aria-hidden="true">x</a>`,
	`<div title="abc role="x">`,
	`<div title="abc>`,
	`<my-el role=" Tab ">`,
	`<<p><!-- <div role="tab"> --></p>`,
	"<input type='checkbox' role=\"switch\"\n aria-checked=maybe />",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.html файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
