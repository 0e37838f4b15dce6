package fix

import "arialint/internal/source"

// TextEdit replaces the bytes covered by Span with NewText. When OldText is
// set the edit only applies if the covered bytes still equal it.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Insert creates an edit that inserts text at a point (Span.Start == Span.End).
func Insert(file source.FileID, at uint32, text string) TextEdit {
	return TextEdit{
		Span:    source.Span{File: file, Start: at, End: at},
		NewText: text,
	}
}

// Delete removes text covered by span.
func Delete(span source.Span, expect string) TextEdit {
	return TextEdit{
		Span:    span,
		OldText: expect,
	}
}

// Replace replaces text covered by span with newText.
func Replace(span source.Span, newText, expect string) TextEdit {
	return TextEdit{
		Span:    span,
		NewText: newText,
		OldText: expect,
	}
}
