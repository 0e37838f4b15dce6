package fuzztests

import (
	"testing"
	"time"

	"arialint/internal/fix"
	"arialint/internal/markup"
	"arialint/internal/smell"
	"arialint/internal/source"
	"arialint/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// fixTimeout bounds one Generate call; exceeding it points at a loop in a pass.
const fixTimeout = 5 * time.Second

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzScannerSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.html", clampInput(input)))

		tags := markup.Tags(file.Content, file.ID)
		if err := testkit.CheckTagSpans(file, tags); err != nil {
			t.Fatalf("tag span invariant: %v", err)
		}
		_ = markup.ExtractARIA(file.Content)
	})
}

func FuzzDetectorSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.html", clampInput(input)))

		diags := smell.Detect(file, smell.Options{})
		if err := testkit.CheckDiagnosticSpans(file, diags); err != nil {
			t.Fatalf("diagnostic span invariant: %v", err)
		}
	})
}

// FuzzFixNoHang checks that the fixer terminates and leaves unchanged input
// byte for byte intact.
func FuzzFixNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan fix.Result, 1)
		go func() {
			done <- fix.Generate(input, fix.Options{TrackDepth: len(input)%2 == 1})
		}()

		select {
		case res := <-done:
			if res.Changes == nil {
				t.Fatal("Changes must never be nil")
			}
			if !res.Changed() && len(input) > 0 && res.Text != string(input) {
				t.Fatalf("no changes reported but text differs:\n in: %q\nout: %q", input, res.Text)
			}
		case <-time.After(fixTimeout):
			t.Fatalf("fix did not finish within %v (input %d bytes)", fixTimeout, len(input))
		}
	})
}
