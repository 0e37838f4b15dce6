package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/roles"
	"arialint/internal/summary"
)

// RoleText writes the role panel as plain text.
func RoleText(w io.Writer, rs summary.RoleSummary, colored bool) error {
	p := newPalette(colored)
	switch rs.Kind {
	case summary.KindNone:
		_, err := fmt.Fprintln(w, p.message("No `role=\"…\"` attributes or implicit roles detected. Try using semantic HTML elements like `<button>`, `<nav>`, or `<main>`."))
		return err
	case summary.KindUnknown:
		quoted := make([]string, 0, len(rs.Detected))
		for _, r := range rs.Detected {
			quoted = append(quoted, "`"+r+"`")
		}
		_, err := fmt.Fprintln(w, p.message(fmt.Sprintf("Detected role(s): %s. They are not in the built-in ARIA reference.", strings.Join(quoted, ", "))))
		return err
	case summary.KindImplicitUnknown:
		_, err := fmt.Fprintln(w, "We detected an implicit role, but it is not in the built-in ARIA reference.")
		return err
	}

	label := "role"
	advice := "Prefer native HTML where possible. Only use this ARIA role when you can't use the semantic element."
	if rs.Kind == summary.KindImplicit {
		label = "implicit role"
		advice = fmt.Sprintf("This role comes from the native HTML element. You usually don't need to explicitly set `role=\"%s\"`.", rs.Role.Name)
	}
	if err := RoleCard(w, *rs.Role, label, colored); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, p.message(advice))
	return err
}

// RoleCard writes one reference entry.
func RoleCard(w io.Writer, r roles.Role, label string, colored bool) error {
	p := newPalette(colored)
	fmt.Fprintf(w, "%s %s\n", p.gutter.Sprint(label+":"), p.path.Sprint(r.Name))
	fmt.Fprintf(w, "  %s\n", r.Description)

	chips := []string{string(r.Category)}
	if r.PreferredNative != "" {
		chips = append(chips, "Prefer "+r.PreferredNative)
	}
	chips = append(chips, r.GoodFor...)
	if r.Deprecated {
		chips = append(chips, p.sev[diag.SevError].Sprint("Deprecated"))
	}
	fmt.Fprintf(w, "  [%s]\n", strings.Join(chips, "] ["))
	if r.DocURL != "" {
		fmt.Fprintf(w, "  %s\n", r.DocURL)
	}
	_, err := fmt.Fprintln(w)
	return err
}

// AttributesText writes the "attributes present" list.
func AttributesText(w io.Writer, s summary.Summary, colored bool) error {
	p := newPalette(colored)
	if len(s.Attributes) == 0 {
		_, err := fmt.Fprintln(w, p.message("No `aria-*` attributes detected. If you're already using semantic HTML and simple controls, you may not need ARIA states or properties here."))
		return err
	}
	for _, a := range s.Attributes {
		issue := ""
		if a.Issue {
			issue = " " + p.sev[diag.SevWarning].Sprint("(potential issue)")
		}
		if _, err := fmt.Fprintf(w, "%s – %s%s\n", p.code.Sprintf("%s=\"%s\"", a.Name, a.Value), a.Hint, issue); err != nil {
			return err
		}
	}
	return nil
}
