// Package roles holds the static WAI-ARIA reference data used by the detector,
// the autofixer and the lookup surfaces: role descriptors, attribute hints and
// the required / discouraged attribute tables.
package roles

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Category groups roles the way the WAI-ARIA taxonomy presents them.
type Category string

const (
	CategoryLiveRegion        Category = "live region"
	CategoryLandmark          Category = "landmark"
	CategoryWindow            Category = "window"
	CategoryWidget            Category = "widget"
	CategoryDocumentStructure Category = "document structure"
	CategoryOther             Category = "other"
)

// Role describes one non-abstract ARIA role.
type Role struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	DocURL      string   `json:"doc_url,omitempty"`
	// PreferredNative names the native element that should be used instead, e.g. "<nav>".
	PreferredNative string   `json:"preferred_native,omitempty"`
	GoodFor         []string `json:"good_for,omitempty"`
	Deprecated      bool     `json:"deprecated,omitempty"`
}

var (
	byName     map[string]int
	categories []Category
)

func init() {
	byName = make(map[string]int, len(table))
	for i, r := range table {
		if _, dup := byName[r.Name]; dup {
			panic("roles: duplicate role " + r.Name)
		}
		byName[r.Name] = i
		if !slices.Contains(categories, r.Category) {
			categories = append(categories, r.Category)
		}
	}
}

// Key normalises a role or attribute name for lookups: trimmed and case-folded.
func Key(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	// Caser хранит состояние, поэтому создаём новый на каждый вызов
	return cases.Fold().String(name)
}

// Lookup finds a role by name. Matching is exact after trimming and case folding.
func Lookup(name string) (Role, bool) {
	i, ok := byName[Key(name)]
	if !ok {
		return Role{}, false
	}
	return clone(table[i]), true
}

// Known reports whether name is a role from the reference table.
func Known(name string) bool {
	_, ok := byName[Key(name)]
	return ok
}

// RequiredFor returns the attributes a role must carry, in table order.
// Unknown roles yield nil.
func RequiredFor(role string) []string {
	return slices.Clone(requiredAttrs[Key(role)])
}

// DiscouragedFor returns the attributes that are not typically used with role.
func DiscouragedFor(role string) []string {
	return slices.Clone(discouragedAttrs[Key(role)])
}

// StateHint returns a one-line explanation for well-known ARIA state attributes.
func StateHint(attr string) (string, bool) {
	h, ok := stateHints[Key(attr)]
	return h, ok
}

// All returns every role in declaration order.
func All() []Role {
	out := make([]Role, 0, len(table))
	for _, r := range table {
		out = append(out, clone(r))
	}
	return out
}

// Categories returns the categories in the order they first appear in the table.
func Categories() []Category {
	return slices.Clone(categories)
}

// ByCategory returns the roles of one category in declaration order.
func ByCategory(cat Category) []Role {
	var out []Role
	for _, r := range table {
		if r.Category == cat {
			out = append(out, clone(r))
		}
	}
	return out
}

// ParseCategory resolves a category from user input; "document-structure" and
// "live_region" style spellings are accepted.
func ParseCategory(s string) (Category, bool) {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(Key(s))
	for _, c := range categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Names returns all role names sorted alphabetically.
func Names() []string {
	out := make([]string, 0, len(table))
	for _, r := range table {
		out = append(out, r.Name)
	}
	slices.Sort(out)
	return out
}

func clone(r Role) Role {
	r.GoodFor = slices.Clone(r.GoodFor)
	return r
}
