package smell

import (
	"regexp"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/semantics"
)

var integerRe = regexp.MustCompile(`^-?[0-9]`)

func roleSemantics(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		role := tag.Role()
		if role == "" {
			continue
		}
		implicit, ok := semantics.ImplicitRoleOf(tag)
		if !ok {
			continue
		}
		attr, _ := tag.Lookup("role")
		subject := diag.Subject{Tag: tag.Name, Role: role, Attr: "role", Value: attr.Value}
		if implicit == role {
			diag.ReportCode(r, diag.RolRedundant, attr.Span, msgRedundantRole(tag.Name, role)).
				WithSubject(subject).
				Emit()
		} else {
			diag.ReportCode(r, diag.RolOverridesNative, attr.Span, msgOverridesNative(tag.Name, implicit, role)).
				WithSubject(subject).
				Emit()
		}
	}

	for _, tag := range s.tags {
		role := tag.Role()
		if role != "presentation" && role != "none" {
			continue
		}
		if !focusable(tag) {
			continue
		}
		attr, _ := tag.Lookup("role")
		diag.ReportCode(r, diag.RolPresentationalFocusable, tag.Span, msgPresentationalFocusable).
			WithSubject(diag.Subject{Tag: tag.Name, Role: role, Attr: "role", Value: attr.Value}).
			WithNote(attr.Span, "presentational role").
			Emit()
	}
}

// focusable: native focusable element, any integer tabindex (quoted or not)
// or a non-empty quoted href.
func focusable(tag markup.Tag) bool {
	if semantics.NativelyFocusable(tag.Name) {
		return true
	}
	if ti, ok := tag.Get("tabindex"); ok && ti.HasValue && integerRe.MatchString(ti.Value) {
		return true
	}
	href, ok := tag.Lookup("href")
	return ok && href.Value != ""
}
