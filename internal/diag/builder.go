package diag

import "arialint/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

// NewFor creates a diagnostic with the code's default severity.
func NewFor(code Code, primary source.Span, msg string) Diagnostic {
	return New(code.DefaultSeverity(), code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithSubject(s Subject) Diagnostic {
	d.Subject = s
	return d
}
