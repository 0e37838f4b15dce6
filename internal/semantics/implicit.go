// Package semantics knows which roles native elements carry without an
// explicit role attribute, and which elements are interactive or focusable
// on their own.
package semantics

import (
	"slices"
	"strings"

	"arialint/internal/markup"
)

var (
	nativeInteractive = []string{"a", "button", "input", "textarea", "select", "option"}
	nativeFocusable   = []string{"a", "button", "input", "select", "textarea"}

	inputButtonTypes = []string{"button", "submit", "reset", "image"}
	inputTextTypes   = []string{"email", "tel", "url", "text", "password", "search", "number"}
)

// ImplicitRole returns the role that tagName carries natively. tagText is
// either the full tag or just its attribute text; it is consulted for a[href]
// and input[type].
func ImplicitRole(tagName, tagText string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(tagName))
	if name != "a" && name != "input" {
		return ImplicitRoleOf(markup.Tag{Name: name})
	}
	// нужны атрибуты: разбираем текст тем же сканером
	src := strings.TrimSpace(tagText)
	if !strings.HasPrefix(src, "<") {
		src = "<" + name + " " + src + ">"
	}
	tag, ok := markup.TagAt([]byte(src), 0, 0)
	if !ok {
		return ImplicitRoleOf(markup.Tag{Name: name})
	}
	tag.Name = name
	return ImplicitRoleOf(tag)
}

// ImplicitRoleOf is ImplicitRole for an already scanned tag.
func ImplicitRoleOf(tag markup.Tag) (string, bool) {
	switch tag.Name {
	case "button":
		return "button", true
	case "a":
		if hasNonEmpty(tag, "href") {
			return "link", true
		}
		return "", false
	case "nav":
		return "navigation", true
	case "main":
		return "main", true
	case "header":
		return "banner", true
	case "footer":
		return "contentinfo", true
	case "ul", "ol":
		return "list", true
	case "li":
		return "listitem", true
	case "table":
		return "table", true
	case "tr":
		return "row", true
	case "td":
		return "cell", true
	case "textarea":
		return "textbox", true
	case "input":
		return inputRole(tag)
	}
	return "", false
}

func hasNonEmpty(tag markup.Tag, name string) bool {
	a, ok := tag.Lookup(name)
	return ok && a.Value != ""
}

func inputRole(tag markup.Tag) (string, bool) {
	typ := "text"
	if a, ok := tag.Lookup("type"); ok && a.Value != "" {
		typ = strings.ToLower(a.Value)
	}
	switch {
	case slices.Contains(inputButtonTypes, typ):
		return "button", true
	case typ == "checkbox":
		return "checkbox", true
	case typ == "radio":
		return "radio", true
	case slices.Contains(inputTextTypes, typ):
		return "textbox", true
	}
	return "", false
}

// NativelyInteractive reports whether the element handles activation itself.
func NativelyInteractive(tagName string) bool {
	return slices.Contains(nativeInteractive, strings.ToLower(tagName))
}

// NativelyFocusable reports whether the element is in the tab order by default.
func NativelyFocusable(tagName string) bool {
	return slices.Contains(nativeFocusable, strings.ToLower(tagName))
}
