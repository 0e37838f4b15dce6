package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"arialint/internal/markup"
	"arialint/internal/roles"
	"arialint/internal/semantics"
	"arialint/internal/source"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params textDocumentPositionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	file, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}
	return s.sendResponse(msg.ID, buildHover(file, params.Position))
}

// buildHover explains the role value, aria-* attribute or tag name under pos.
func buildHover(file *source.File, pos position) *hover {
	offset := offsetForPositionInFile(file, pos)
	tag, ok := tagAt(file, offset)
	if !ok {
		return nil
	}

	var (
		text string
		span source.Span
	)
	switch attr, inAttr := attrAt(tag, offset); {
	case inAttr && attr.Name == "role":
		text, span = roleHover(attr.Value), attr.Span
	case inAttr && strings.HasPrefix(attr.Name, "aria-"):
		text, span = ariaHover(attr), attr.Span
	case spanHas(tag.NameSpan, offset):
		text, span = tagHover(tag), tag.NameSpan
	}
	if text == "" {
		return nil
	}
	r := rangeForSpan(file, span)
	return &hover{
		Contents: markupContent{Kind: "markdown", Value: text},
		Range:    &r,
	}
}

func tagAt(file *source.File, offset uint32) (markup.Tag, bool) {
	for tag := range markup.ScanFile(file.Content, file.ID) {
		if tag.Span.Start > offset {
			break
		}
		if spanHas(tag.Span, offset) {
			return tag, true
		}
	}
	return markup.Tag{}, false
}

func attrAt(tag markup.Tag, offset uint32) (markup.Attr, bool) {
	for _, a := range tag.Attrs {
		if spanHas(a.Span, offset) {
			return a, true
		}
	}
	return markup.Attr{}, false
}

func spanHas(span source.Span, offset uint32) bool {
	return span.Start <= offset && offset < span.End
}

func roleHover(value string) string {
	name := roles.Key(value)
	if name == "" {
		return "Empty `role` attribute: the element keeps its native semantics."
	}
	r, ok := roles.Lookup(name)
	if !ok {
		return fmt.Sprintf("`%s` is not in the built-in ARIA reference.", name)
	}
	return roleMarkdown(r)
}

func roleMarkdown(r roles.Role) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s)", r.Name, r.Category)
	if r.Deprecated {
		b.WriteString(" *deprecated*")
	}
	fmt.Fprintf(&b, "\n\n%s", r.Description)
	if required := roles.RequiredFor(r.Name); len(required) > 0 {
		fmt.Fprintf(&b, "\n\nRequired: `%s`", strings.Join(required, "`, `"))
	}
	if r.PreferredNative != "" {
		fmt.Fprintf(&b, "\n\nPrefer native `%s`.", r.PreferredNative)
	}
	if r.DocURL != "" {
		fmt.Fprintf(&b, "\n\n[Reference](%s)", r.DocURL)
	}
	return b.String()
}

func ariaHover(attr markup.Attr) string {
	hint, ok := roles.StateHint(attr.Name)
	if !ok {
		return fmt.Sprintf("`%s`: no built-in description.", attr.Name)
	}
	return fmt.Sprintf("`%s`: %s", attr.Name, hint)
}

func tagHover(tag markup.Tag) string {
	role, ok := semantics.ImplicitRoleOf(tag)
	if !ok {
		return ""
	}
	text := fmt.Sprintf("`<%s>` has the implicit role `%s`.", tag.Name, role)
	if r, ok := roles.Lookup(role); ok {
		text += "\n\n" + roleMarkdown(r)
	}
	return text
}
