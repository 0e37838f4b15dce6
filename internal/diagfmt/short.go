package diagfmt

import (
	"fmt"
	"io"

	"arialint/internal/diag"
	"arialint/internal/source"
)

// Short writes one line per diagnostic in detector order:
// <severity> <CODE> <path>:<line>:<col> <message>
func Short(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet) error {
	out := diag.FormatShortDiagnostics(diags, fs, false)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
