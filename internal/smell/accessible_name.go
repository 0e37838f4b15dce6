package smell

import (
	"slices"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/semantics"
)

var rolesNeedingName = []string{
	"button", "link", "switch", "checkbox", "radio",
	"menuitem", "menuitemcheckbox", "menuitemradio", "tab", "option",
}

var nameAttrs = []string{"aria-label", "aria-labelledby"}

func accessibleName(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		label, hasLabel := tag.Lookup("aria-label")
		labelledby, hasLabelledby := tag.Lookup("aria-labelledby")
		if !hasLabel && !hasLabelledby {
			continue
		}

		_, explicit := tag.Lookup("role")
		_, implicit := semantics.ImplicitRoleOf(tag)
		if !explicit && !implicit {
			first := label
			if !hasLabel {
				first = labelledby
			}
			diag.ReportCode(r, diag.NamRoleless, first.Span, msgRoleless(tag.Name)).
				WithSubject(diag.Subject{Tag: tag.Name, Attr: first.Name, Value: first.Value}).
				Emit()
		}

		if hasLabel && hasLabelledby {
			diag.ReportCode(r, diag.NamDuplicateSource, labelledby.Span, msgDuplicateName(tag.Name)).
				WithSubject(diag.Subject{Tag: tag.Name, Role: tag.Role(), Attr: "aria-labelledby", Related: []string{"aria-label"}}).
				WithNote(label.Span, "aria-label is also set here").
				Emit()
		}
	}

	emptyNames(s, r)
	unnamedButtons(s, r)
	unnamedInteractive(s, r)
}

func emptyNames(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		for _, a := range tag.Attrs {
			if !a.Quoted() || !slices.Contains(nameAttrs, a.Name) || strings.TrimSpace(a.Value) != "" {
				continue
			}
			diag.ReportCode(r, diag.NamEmpty, a.Span, msgEmptyName(a.Name)).
				WithSubject(diag.Subject{Tag: tag.Name, Role: tag.Role(), Attr: a.Name, Value: a.Value}).
				Emit()
		}
	}
}

func hasNameAttr(tag markup.Tag) bool {
	for _, name := range []string{"aria-label", "aria-labelledby", "title"} {
		if _, ok := tag.Lookup(name); ok {
			return true
		}
	}
	return false
}

// unnamedButtons checks native <button> elements. A button nested inside an
// already checked button's text is not checked again.
func unnamedButtons(s *snippet, r diag.Reporter) {
	var resume uint32
	for _, tag := range s.tags {
		if tag.Name != "button" || tag.Span.Start < resume {
			continue
		}
		closeSpan, ok := markup.FindClose(s.src, tag.Span.End, "button")
		if !ok {
			continue
		}
		resume = closeSpan.End
		text, _ := markup.InnerText(s.src, tag)
		if text != "" || hasNameAttr(tag) {
			continue
		}
		diag.ReportCode(r, diag.NamButtonUnnamed, tag.Span, msgButtonUnnamed).
			WithSubject(diag.Subject{Tag: "button", Role: tag.Role(), Related: []string{"aria-label", "aria-labelledby", "title"}}).
			Emit()
	}
}

func unnamedInteractive(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		role := tag.Role()
		if !slices.Contains(rolesNeedingName, role) || semantics.NativelyInteractive(tag.Name) {
			continue
		}
		if hasNameAttr(tag) {
			continue
		}
		if text, ok := markup.InnerText(s.src, tag); ok && text != "" {
			continue
		}
		diag.ReportCode(r, diag.NamInteractiveUnnamed, tag.Span, msgInteractiveUnnamed(tag.Name, role)).
			WithSubject(diag.Subject{Tag: tag.Name, Role: role, Related: []string{"aria-label", "aria-labelledby"}}).
			Emit()
	}
}
