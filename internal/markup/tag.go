package markup

import (
	"strings"

	"arialint/internal/source"
)

// Attr is one attribute occurrence inside an opening tag.
type Attr struct {
	Name  string `json:"name"` // lowercase
	Value string `json:"value"`
	// Quote is '"' or '\'' for quoted values and 0 for unquoted values and bare names.
	Quote    byte        `json:"-"`
	HasValue bool        `json:"-"`
	Span     source.Span `json:"-"`
}

// Quoted reports whether the attribute carried a quoted value.
func (a Attr) Quoted() bool { return a.Quote != 0 }

// Tag is a flat record of one opening or self-closing tag. There is no tree.
type Tag struct {
	Name        string // lowercase
	RawName     string
	Attrs       []Attr
	AttrText    string
	NameSpan    source.Span
	Span        source.Span // from '<' through '>'
	SelfClosing bool
}

// Text returns the full matched tag text.
func (t Tag) Text(src []byte) string {
	return t.Span.Text(src)
}

// Lookup returns the first quoted attribute called name.
// Unquoted values and bare names are treated as absent.
func (t Tag) Lookup(name string) (Attr, bool) {
	for _, a := range t.Attrs {
		if a.Quote != 0 && a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Get returns the first attribute called name in any form.
func (t Tag) Get(name string) (Attr, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Has reports whether the attribute is present in any form.
func (t Tag) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Value returns the quoted value of name, or "" when it is absent.
func (t Tag) Value(name string) string {
	a, _ := t.Lookup(name)
	return a.Value
}

// Role returns the trimmed, lowercased explicit role, or "" when the role
// attribute is missing, unquoted or blank.
func (t Tag) Role() string {
	a, ok := t.Lookup("role")
	if !ok {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(a.Value))
}

// InsertPos is the offset right after the last attribute, or after the name
// when the tag has none. New attributes are inserted there.
func (t Tag) InsertPos() uint32 {
	if n := len(t.Attrs); n > 0 {
		return t.Attrs[n-1].Span.End
	}
	return t.NameSpan.End
}
