// Package summary condenses a snippet into the two overview panels of the
// tool: which role the snippet is about, and which ARIA attributes it uses.
package summary

import (
	"slices"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/roles"
	"arialint/internal/semantics"
	"arialint/internal/smell"
)

// DefaultHint is used for attributes without a specific explanation.
const DefaultHint = "ARIA attribute detected."

// Kind says where the summarised role came from.
type Kind uint8

const (
	// KindNone: no explicit role and no native element with an implicit role.
	KindNone Kind = iota
	// KindExplicit: the first known role="…" value.
	KindExplicit
	// KindImplicit: no explicit roles; the first implicit role of a native element.
	KindImplicit
	// KindImplicitUnknown: an implicit role was found but is missing from the reference.
	KindImplicitUnknown
	// KindUnknown: explicit roles are present but none is in the reference.
	KindUnknown
)

var kindNames = [...]string{"none", "explicit", "implicit", "implicit-unknown", "unknown"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RoleSummary is the role panel.
type RoleSummary struct {
	Kind Kind        `json:"kind"`
	Role *roles.Role `json:"role,omitempty"`
	// Detected lists distinct explicit roles in order of appearance.
	Detected []string `json:"detected,omitempty"`
	// Implicit lists distinct implicit roles; only filled when Detected is empty.
	Implicit []string `json:"implicit,omitempty"`
}

// Attribute is one aria-* occurrence with its explanation.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Hint  string `json:"hint"`
	// Issue is set when some diagnostic is about this attribute.
	Issue bool `json:"issue,omitempty"`
}

type Summary struct {
	Role        RoleSummary       `json:"role"`
	Attributes  []Attribute       `json:"attributes"`
	Diagnostics []diag.Diagnostic `json:"-"`
}

// Empty reports whether the snippet had nothing to summarise.
func (s Summary) Empty() bool {
	return s.Role.Kind == KindNone && len(s.Attributes) == 0
}

// Build summarises a trimmed snippet given the diagnostics already found for it.
func Build(snippet string, diags []diag.Diagnostic) Summary {
	src := []byte(strings.TrimSpace(snippet))
	return Summary{
		Role:        roleSummary(src),
		Attributes:  attributes(src, diags),
		Diagnostics: diags,
	}
}

// ForString runs the detector and summarises the snippet.
func ForString(snippet string) Summary {
	return Build(snippet, smell.DetectString(strings.TrimSpace(snippet)))
}

func roleSummary(src []byte) RoleSummary {
	var rs RoleSummary
	if len(src) == 0 {
		return rs
	}
	tags := markup.Tags(src, 0)

	for _, tag := range tags {
		if r := tag.Role(); r != "" && !slices.Contains(rs.Detected, r) {
			rs.Detected = append(rs.Detected, r)
		}
	}
	if len(rs.Detected) > 0 {
		for _, name := range rs.Detected {
			if r, ok := roles.Lookup(name); ok {
				rs.Kind = KindExplicit
				rs.Role = &r
				return rs
			}
		}
		rs.Kind = KindUnknown
		return rs
	}

	for _, tag := range tags {
		if r, ok := semantics.ImplicitRoleOf(tag); ok && !slices.Contains(rs.Implicit, r) {
			rs.Implicit = append(rs.Implicit, r)
		}
	}
	if len(rs.Implicit) == 0 {
		return rs
	}
	if r, ok := roles.Lookup(rs.Implicit[0]); ok {
		rs.Kind = KindImplicit
		rs.Role = &r
	} else {
		rs.Kind = KindImplicitUnknown
	}
	return rs
}

func attributes(src []byte, diags []diag.Diagnostic) []Attribute {
	found := markup.ExtractARIA(src)
	out := make([]Attribute, 0, len(found))
	for _, a := range found {
		hint, ok := roles.StateHint(a.Name)
		if !ok {
			hint = DefaultHint
		}
		out = append(out, Attribute{
			Name:  a.Name,
			Value: a.Value,
			Hint:  hint,
			Issue: slices.ContainsFunc(diags, func(d diag.Diagnostic) bool { return d.Mentions(a.Name) }),
		})
	}
	return out
}

// ProblemAttrs returns the distinct aria-* attributes that diagnostics are
// about, in order of first mention.
func ProblemAttrs(diags []diag.Diagnostic) []string {
	var out []string
	add := func(name string) {
		if strings.HasPrefix(name, "aria-") && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, d := range diags {
		add(d.Subject.Attr)
		for _, r := range d.Subject.Related {
			add(r)
		}
	}
	return out
}
