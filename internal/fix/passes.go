package fix

import (
	"fmt"
	"slices"
	"strings"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/semantics"
	"arialint/internal/source"
)

func redundantRoles(src []byte, tags []markup.Tag, _ Options) []candidate {
	var out []candidate
	for _, tag := range tags {
		role := tag.Role()
		if role == "" {
			continue
		}
		implicit, ok := semantics.ImplicitRoleOf(tag)
		if !ok || implicit != role {
			continue
		}
		attr, _ := tag.Lookup("role")
		span := withLeadingSpace(src, attr.Span)
		out = append(out, candidate{
			edits: []TextEdit{Delete(span, span.Text(src))},
			change: Change{
				Code:    diag.RolRedundant,
				Subject: diag.Subject{Tag: tag.Name, Role: role, Attr: "role", Value: attr.Value},
				Message: fmt.Sprintf("Removed redundant `role=\"%s\"` from `<%s>` because the element already has that implicit role.", role, tag.Name),
				Span:    tag.Span,
			},
		})
	}
	return out
}

// withLeadingSpace extends span to the whitespace directly before it.
func withLeadingSpace(src []byte, span source.Span) source.Span {
	for span.Start > 0 {
		switch src[span.Start-1] {
		case ' ', '\t', '\n', '\r', '\f':
			span.Start--
			continue
		}
		break
	}
	return span
}

func defaultChecked(_ []byte, tags []markup.Tag, _ Options) []candidate {
	var out []candidate
	for _, tag := range tags {
		role := tag.Role()
		if role != "switch" && role != "checkbox" {
			continue
		}
		if _, ok := tag.Lookup("aria-checked"); ok {
			continue
		}
		out = append(out, candidate{
			edits: []TextEdit{Insert(tag.Span.File, tag.InsertPos(), ` aria-checked="false"`)},
			change: Change{
				Code:    diag.AtrMissingRequired,
				Subject: diag.Subject{Tag: tag.Name, Role: role, Attr: "aria-checked", Value: "false"},
				Message: fmt.Sprintf("Added default `aria-checked=\"false\"` to element with `role=\"%s\"` so its state is exposed to assistive technologies.", role),
				Span:    tag.Span,
			},
		})
	}
	return out
}

var valueDefaults = []struct{ name, value string }{
	{"aria-valuemin", "0"},
	{"aria-valuemax", "100"},
	{"aria-valuenow", "0"},
}

func defaultValueRange(_ []byte, tags []markup.Tag, _ Options) []candidate {
	var out []candidate
	for _, tag := range tags {
		role := tag.Role()
		if role != "slider" && role != "spinbutton" {
			continue
		}
		var (
			b     strings.Builder
			added []string
		)
		for _, d := range valueDefaults {
			if _, ok := tag.Lookup(d.name); ok {
				continue
			}
			fmt.Fprintf(&b, ` %s="%s"`, d.name, d.value)
			added = append(added, d.name)
		}
		if len(added) == 0 {
			continue
		}
		out = append(out, candidate{
			edits: []TextEdit{Insert(tag.Span.File, tag.InsertPos(), b.String())},
			change: Change{
				Code:    diag.AtrMissingRequired,
				Subject: diag.Subject{Tag: tag.Name, Role: role, Attr: added[0], Related: added[1:]},
				Message: fmt.Sprintf("Added default `aria-valuemin`, `aria-valuemax`, and/or `aria-valuenow` to element with `role=\"%s\"` so its value range is communicated.", role),
				Span:    tag.Span,
			},
		})
	}
	return out
}

// wrapTablist looks at every tag up to its closing tag. When the enclosed
// text holds a role="tab" tag the container is consumed: scanning resumes
// after the closing tag whether or not the container got a role.
func wrapTablist(src []byte, tags []markup.Tag, opts Options) []candidate {
	var (
		out    []candidate
		resume uint32
	)
	findClose := markup.FindClose
	if opts.TrackDepth {
		findClose = markup.FindMatchingClose
	}

	for i, tag := range tags {
		if tag.Span.Start < resume || tag.SelfClosing {
			continue
		}
		closeSpan, ok := findClose(src, tag.Span.End, tag.Name)
		if !ok || !enclosesTab(tags[i+1:], closeSpan.Start) {
			continue
		}
		resume = closeSpan.End
		if tag.Has("role") {
			continue
		}
		out = append(out, candidate{
			edits: []TextEdit{Insert(tag.Span.File, tag.InsertPos(), ` role="tablist"`)},
			change: Change{
				Code:    diag.StrTabNoTablist,
				Subject: diag.Subject{Tag: tag.Name, Role: "tablist", Attr: "role", Value: "tablist", Related: []string{"tab"}},
				Message: fmt.Sprintf("Added `role=\"tablist\"` to `<%s>` that wraps elements with `role=\"tab\"`.", tag.Name),
				Span:    tag.Span,
			},
		})
	}
	return out
}

// enclosesTab reports whether a tag with role="tab" ends before limit.
// following must be the tags after the container in scan order.
func enclosesTab(following []markup.Tag, limit uint32) bool {
	return slices.ContainsFunc(following, func(t markup.Tag) bool {
		return t.Span.End <= limit && t.Role() == "tab"
	})
}
