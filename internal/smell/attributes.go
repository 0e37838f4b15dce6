package smell

import (
	"slices"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/roles"
)

var (
	tristate = []string{"true", "false", "undefined"}
	checked  = []string{"true", "false", "mixed", "undefined"}
	boolean  = []string{"true", "false"}

	enumerated = map[string][]string{
		"aria-expanded": tristate,
		"aria-selected": tristate,
		"aria-hidden":   tristate,
		"aria-checked":  checked,
		"aria-pressed":  checked,
		"aria-modal":    boolean,
	}
)

// ValidValue reports whether value is allowed for the ARIA attribute name.
// Attributes without an enumerated value set accept anything.
func ValidValue(name, value string) bool {
	allowed, ok := enumerated[strings.ToLower(name)]
	if !ok {
		return true
	}
	return slices.Contains(allowed, strings.ToLower(strings.TrimSpace(value)))
}

func attributes(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		if role := tag.Role(); role != "" {
			for _, name := range roles.RequiredFor(role) {
				if _, ok := tag.Lookup(name); ok {
					continue
				}
				diag.ReportCode(r, diag.AtrMissingRequired, tag.Span, msgMissingRequired(role, name)).
					WithSubject(diag.Subject{Tag: tag.Name, Role: role, Attr: name}).
					Emit()
			}
			for _, name := range roles.DiscouragedFor(role) {
				a, ok := tag.Lookup(name)
				if !ok {
					continue
				}
				diag.ReportCode(r, diag.AtrDiscouraged, a.Span, msgDiscouraged(name, role)).
					WithSubject(diag.Subject{Tag: tag.Name, Role: role, Attr: name, Value: a.Value}).
					Emit()
			}
		}

		for _, a := range tag.Attrs {
			if !a.Quoted() || !strings.HasPrefix(a.Name, "aria-") || ValidValue(a.Name, a.Value) {
				continue
			}
			diag.ReportCode(r, diag.AtrInvalidValue, a.Span, msgInvalidValue(a.Name, a.Value)).
				WithSubject(diag.Subject{Tag: tag.Name, Role: tag.Role(), Attr: a.Name, Value: a.Value}).
				Emit()
		}
	}
}
