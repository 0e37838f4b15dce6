package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arialint/internal/diag"
	"arialint/internal/source"
)

const tabWidth = 4

type palette struct {
	enabled bool
	sev     map[diag.Severity]*color.Color
	code    *color.Color
	path    *color.Color
	gutter  *color.Color
	caret   *color.Color
	note    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		enabled: enabled,
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgBlue, color.Bold),
		},
		code:   color.New(color.FgCyan),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgHiBlack),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgMagenta),
	}
	for _, c := range []*color.Color{p.code, p.path, p.gutter, p.caret, p.note} {
		p.toggle(c)
	}
	for _, c := range p.sev {
		p.toggle(c)
	}
	return p
}

// toggle overrides color's global tty detection with the requested mode.
func (p palette) toggle(c *color.Color) {
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// message renders backtick fragments in the code colour, or leaves them as
// they are when colours are off.
func (p palette) message(msg string) string {
	if !p.enabled {
		return msg
	}
	var b strings.Builder
	for i, part := range splitCode(msg) {
		if i%2 == 1 {
			b.WriteString(p.code.Sprint(part))
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}

func formatPath(f *source.File, mode PathMode, baseDir string) string {
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	return f.FormatPath(mode.String(), baseDir)
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Для каждой диагностики печатает
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span и, по желанию, Notes.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i, d := range diags {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, p, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, p palette, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPath(f, opts.PathMode, fs.BaseDir())

	sevColor := p.sev[d.Severity]
	if sevColor == nil {
		sevColor = p.sev[diag.SevInfo]
	}
	header := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		p.path.Sprint(path), start.Line, start.Col,
		sevColor.Sprint(d.Severity.String()), d.Code.ID(), p.message(d.Message))
	if opts.ShowTitle {
		header += p.gutter.Sprintf(" (%s)", d.Code.Title())
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	gutterWidth := len(fmt.Sprint(start.Line))
	first := max(int(start.Line)-int(opts.Context), 1)
	for line := first; line <= int(start.Line); line++ {
		text := clip(expandTabs(f.GetLine(uint32(line))), opts.Width) // #nosec G115 -- line is within the file
		if _, err := fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, line), text); err != nil {
			return err
		}
	}

	// подчёркивание считаем в колонках терминала, а не в байтах
	lineText := f.GetLine(start.Line)
	startByte := min(int(start.Col)-1, len(lineText))
	endByte := len(lineText)
	if end.Line == start.Line {
		endByte = min(int(end.Col)-1, len(lineText))
	}
	pad := runewidth.StringWidth(expandTabs(lineText[:startByte]))
	width := max(runewidth.StringWidth(expandTabs(lineText[startByte:max(endByte, startByte)])), 1)
	underline := "^" + strings.Repeat("~", width-1)
	if _, err := fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), p.caret.Sprint(underline)); err != nil {
		return err
	}

	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), path, ns.Line, ns.Col, p.message(n.Msg)); err != nil {
			return err
		}
	}
	return nil
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}

// Counts tallies diagnostics by severity.
type Counts struct {
	Errors, Warnings, Infos int
}

func CountOf(diags []diag.Diagnostic) Counts {
	var c Counts
	for _, d := range diags {
		switch d.Severity {
		case diag.SevError:
			c.Errors++
		case diag.SevWarning:
			c.Warnings++
		default:
			c.Infos++
		}
	}
	return c
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Footer writes the one-line totals shown after pretty output.
func Footer(w io.Writer, c Counts, files int, colored bool) error {
	line := fmt.Sprintf("%s, %s, %s in %s",
		plural(c.Errors, "error"), plural(c.Warnings, "warning"), plural(c.Infos, "info"), plural(files, "file"))
	if colored {
		style := lipgloss.NewStyle().Bold(true)
		switch {
		case c.Errors > 0:
			style = style.Foreground(lipgloss.Color("1"))
		case c.Warnings > 0:
			style = style.Foreground(lipgloss.Color("3"))
		default:
			style = style.Foreground(lipgloss.Color("2"))
		}
		line = style.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
