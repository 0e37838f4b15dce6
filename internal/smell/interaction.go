package smell

import (
	"slices"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/semantics"
)

var (
	clickHandlers = []string{"onclick", "onmousedown", "onmouseup"}
	keyHandlers   = []string{"onkeydown", "onkeyup", "onkeypress"}
)

func interaction(s *snippet, r diag.Reporter) {
	mouseOnly(s, r)
	expandedWithoutControls(s, r)

	if tag, ok := firstTabWithExpanded(s); ok {
		attr, _ := tag.Lookup("aria-expanded")
		diag.ReportCode(r, diag.IntTabExpanded, attr.Span, msgTabExpanded).
			WithSubject(diag.Subject{Tag: tag.Name, Role: "tab", Attr: "aria-expanded", Value: attr.Value, Related: []string{"aria-selected"}}).
			Emit()
	}

	if dialog, ok := s.firstWithRole("dialog"); ok && !anyBoolean(s, "aria-modal") {
		diag.ReportCode(r, diag.IntDialogNoModal, dialog.Span, msgDialogNoModal).
			WithSubject(diag.Subject{Tag: dialog.Name, Role: "dialog", Attr: "aria-modal"}).
			Emit()
	}

	if sw, ok := s.firstWithRole("switch"); ok && !anyBoolean(s, "aria-checked") {
		diag.ReportCode(r, diag.IntSwitchNoChecked, sw.Span, msgSwitchNoChecked).
			WithSubject(diag.Subject{Tag: sw.Name, Role: "switch", Attr: "aria-checked"}).
			Emit()
	}
}

func mouseOnly(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		handler, ok := firstQuoted(tag, clickHandlers)
		if !ok || semantics.NativelyInteractive(tag.Name) {
			continue
		}
		if tag.Role() == "button" || tag.Value("tabindex") == "0" || hasKeyHandler(tag) {
			continue
		}
		diag.ReportCode(r, diag.IntMouseOnly, tag.Span, msgMouseOnly).
			WithSubject(diag.Subject{Tag: tag.Name, Attr: handler.Name, Related: []string{"tabindex"}}).
			Emit()
	}
}

func expandedWithoutControls(s *snippet, r diag.Reporter) {
	for _, tag := range s.tags {
		expanded, ok := tag.Lookup("aria-expanded")
		if !ok || !isBoolean(expanded.Value) {
			continue
		}
		if controls, ok := tag.Lookup("aria-controls"); ok && controls.Value != "" {
			continue
		}
		diag.ReportCode(r, diag.IntExpandedNoControls, expanded.Span, msgExpandedNoControls).
			WithSubject(diag.Subject{Tag: tag.Name, Role: tag.Role(), Attr: "aria-expanded", Value: expanded.Value, Related: []string{"aria-controls"}}).
			Emit()
	}
}

func firstTabWithExpanded(s *snippet) (markup.Tag, bool) {
	for _, tag := range s.tags {
		if tag.Role() != "tab" {
			continue
		}
		if a, ok := tag.Lookup("aria-expanded"); ok && isBoolean(a.Value) {
			return tag, true
		}
	}
	return markup.Tag{}, false
}

// anyBoolean reports whether some tag carries name="true|false".
func anyBoolean(s *snippet, name string) bool {
	for _, tag := range s.tags {
		if a, ok := tag.Lookup(name); ok && isBoolean(a.Value) {
			return true
		}
	}
	return false
}

func isBoolean(v string) bool {
	return strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
}

func firstQuoted(tag markup.Tag, names []string) (markup.Attr, bool) {
	for _, a := range tag.Attrs {
		if a.Quoted() && slices.Contains(names, a.Name) {
			return a, true
		}
	}
	return markup.Attr{}, false
}

// hasKeyHandler accepts quoted and unquoted handlers.
func hasKeyHandler(tag markup.Tag) bool {
	for _, a := range tag.Attrs {
		if a.HasValue && slices.Contains(keyHandlers, a.Name) {
			return true
		}
	}
	return false
}
