package diagfmt

import (
	"encoding/json"
	"io"

	"arialint/internal/diag"
	"arialint/internal/fix"
	"arialint/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	HTML     string       `json:"html"`
	Subject  diag.Subject `json:"subject"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// ChangeJSON is one fix change log entry.
type ChangeJSON struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	HTML     string       `json:"html"`
	Subject  diag.Subject `json:"subject"`
	Location LocationJSON `json:"location"`
}

// FixOutput is the JSON form of a fix run.
type FixOutput struct {
	File    string       `json:"file"`
	Text    string       `json:"text"`
	Changed bool         `json:"changed"`
	Changes []ChangeJSON `json:"changes"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      formatPath(f, pathMode, fs.BaseDir()),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(diags)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range diags[:maxItems] {
		dj := DiagnosticJSON{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  PlainMessage(d.Message),
			HTML:     HTMLMessage(d.Message),
			Subject:  d.Subject,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes && len(d.Notes) > 0 {
			dj.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				dj.Notes[j] = NoteJSON{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				}
			}
		}
		out = append(out, dj)
	}
	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// BuildFixOutput converts a fix result for file into its JSON form.
// Change locations refer to the text each pass ran on.
func BuildFixOutput(res fix.Result, fs *source.FileSet, file source.FileID, pathMode PathMode) FixOutput {
	changes := make([]ChangeJSON, 0, len(res.Changes))
	for _, c := range res.Changes {
		span := c.Span
		span.File = file
		loc := makeLocation(span, fs, pathMode, false)
		changes = append(changes, ChangeJSON{
			Code:     c.Code.ID(),
			Message:  PlainMessage(c.Message),
			HTML:     HTMLMessage(c.Message),
			Subject:  c.Subject,
			Location: loc,
		})
	}
	return FixOutput{
		File:    formatPath(fs.Get(file), pathMode, fs.BaseDir()),
		Text:    res.Text,
		Changed: res.Changed(),
		Changes: changes,
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	return WriteJSON(w, BuildDiagnosticsOutput(diags, fs, opts))
}

// WriteJSON encodes v indented, the way every JSON output of the tool looks.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
