package diag

import (
	"slices"
	"strings"

	"arialint/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Subject names what a diagnostic is about. Consumers correlate diagnostics
// with attributes through these fields, never through the message text.
type Subject struct {
	Tag   string `json:"tag,omitempty"`
	Role  string `json:"role,omitempty"`
	Attr  string `json:"attr,omitempty"`
	Value string `json:"value,omitempty"`
	// Related lists further attributes the message talks about.
	Related []string `json:"related,omitempty"`
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Subject  Subject
	// Message is plain text; code-like fragments are wrapped in backticks.
	Message string
	Primary source.Span
	Notes   []Note
}

// Mentions reports whether the diagnostic is about attr.
func (d Diagnostic) Mentions(attr string) bool {
	if attr == "" {
		return false
	}
	return d.Subject.Attr == attr || slices.Contains(d.Subject.Related, attr)
}

// codeMarkReplacer keeps snippet text from closing a backtick code fragment.
var codeMarkReplacer = strings.NewReplacer("`", "\u02cb")

// Literal prepares snippet text for interpolation inside a backtick-quoted
// fragment of a message: backticks become U+02CB so renderers that split on
// backticks keep their pairing.
func Literal(s string) string {
	return codeMarkReplacer.Replace(s)
}
