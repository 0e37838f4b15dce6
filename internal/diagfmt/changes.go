package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"arialint/internal/fix"
)

// Changes writes the change log of a fix run, one bullet per change.
func Changes(w io.Writer, res fix.Result, colored bool) error {
	p := newPalette(colored)
	if !res.Changed() {
		_, err := fmt.Fprintln(w, "no changes")
		return err
	}
	bullet := color.New(color.FgGreen)
	p.toggle(bullet)
	for _, c := range res.Changes {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bullet.Sprint("+"), c.Code.ID(), p.message(c.Message)); err != nil {
			return err
		}
	}
	return nil
}
