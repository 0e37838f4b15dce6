// Package arialint detects ARIA misuse in markup snippets and applies a
// small set of conservative fixes.
//
// The functions here are the API presentation layers build on. They accept
// any string and never fail: empty or non-markup input yields empty results.
package arialint

import (
	"arialint/internal/diag"
	"arialint/internal/diagfmt"
	"arialint/internal/fix"
	"arialint/internal/markup"
	"arialint/internal/roles"
	"arialint/internal/semantics"
	"arialint/internal/smell"
	"arialint/internal/summary"
)

// DetectSmells returns the findings for snippet as HTML fragments, with
// code-like parts wrapped in <code> elements.
func DetectSmells(snippet string) []string {
	return diagfmt.HTMLStrings(Detect(snippet))
}

// Detect returns the structured diagnostics for snippet.
func Detect(snippet string) []diag.Diagnostic {
	return smell.DetectString(snippet)
}

// GenerateFixedCode applies the autofixes and returns the fixed text together
// with the change log as HTML fragments.
func GenerateFixedCode(snippet string) (string, []string) {
	res := GenerateFix(snippet)
	changes := make([]string, 0, len(res.Changes))
	for _, c := range res.Changes {
		changes = append(changes, diagfmt.HTMLMessage(c.Message))
	}
	return res.Text, changes
}

// GenerateFix applies the autofixes and returns the structured result.
func GenerateFix(snippet string) fix.Result {
	return fix.GenerateString(snippet)
}

// FindRole looks up a role by name, ignoring case and surrounding space.
func FindRole(name string) (roles.Role, bool) {
	return roles.Lookup(name)
}

// ExtractAriaAttributes lists the quoted aria-* attributes of snippet in
// order of appearance.
func ExtractAriaAttributes(snippet string) []markup.Attr {
	return markup.ExtractARIA([]byte(snippet))
}

// GetImplicitRoleForTag returns the role tagName carries natively. tagText is
// the opening tag or its attribute text.
func GetImplicitRoleForTag(tagText, tagName string) (string, bool) {
	return semantics.ImplicitRole(tagName, tagText)
}

// Summarize describes which role snippet is about and which ARIA attributes
// it uses.
func Summarize(snippet string) summary.Summary {
	return summary.ForString(snippet)
}
