package roles

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupNormalisesName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"button", "button", true},
		{"  BUTTON ", "button", true},
		{"TabList", "tablist", true},
		{"directory", "directory", true},
		{"", "", false},
		{"   ", "", false},
		{"buttons", "", false},
		{"roletype", "", false}, // абстрактные роли не хранятся
	}
	for _, tt := range tests {
		r, ok := Lookup(tt.in)
		if ok != tt.ok || r.Name != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.in, r.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestLookupButtonDescriptor(t *testing.T) {
	r, ok := Lookup("button")
	if !ok {
		t.Fatal("button not found")
	}
	want := Role{
		Name:            "button",
		Category:        CategoryWidget,
		Description:     "Clickable element that performs an action.",
		DocURL:          "https://developer.mozilla.org/en-US/docs/Web/Accessibility/ARIA/Roles/button_role",
		PreferredNative: "<button>",
		GoodFor:         []string{"custom button", "icon button", "JS-only click handler"},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	r, _ := Lookup("button")
	r.GoodFor[0] = "mutated"
	again, _ := Lookup("button")
	if again.GoodFor[0] != "custom button" {
		t.Fatalf("reference data was mutated through a lookup result")
	}
}

func TestDirectoryIsDeprecated(t *testing.T) {
	r, ok := Lookup("directory")
	if !ok || !r.Deprecated {
		t.Fatalf("directory = %+v, %v", r, ok)
	}
}

func TestRequiredFor(t *testing.T) {
	tests := map[string][]string{
		"checkbox":    {"aria-checked"},
		"Switch":      {"aria-checked"},
		"tab":         {"aria-selected"},
		"slider":      {"aria-valuemin", "aria-valuemax", "aria-valuenow"},
		"progressbar": {"aria-valuemin", "aria-valuemax", "aria-valuenow"},
		"combobox":    {"aria-expanded", "aria-controls"},
		"button":      nil,
		"nonsense":    nil,
	}
	for role, want := range tests {
		if diff := cmp.Diff(want, RequiredFor(role)); diff != "" {
			t.Errorf("RequiredFor(%q) (-want +got):\n%s", role, diff)
		}
	}
}

func TestRequiredRolesAreKnown(t *testing.T) {
	for role := range requiredAttrs {
		if !Known(role) {
			t.Errorf("required table references unknown role %q", role)
		}
	}
	for role := range discouragedAttrs {
		if !Known(role) {
			t.Errorf("discouraged table references unknown role %q", role)
		}
	}
}

func TestDiscouragedFor(t *testing.T) {
	if got := DiscouragedFor("link"); !slices.Equal(got, []string{"aria-pressed"}) {
		t.Errorf("DiscouragedFor(link) = %v", got)
	}
	if got := DiscouragedFor("dialog"); len(got) != 0 {
		t.Errorf("DiscouragedFor(dialog) = %v, want empty", got)
	}
}

func TestStateHint(t *testing.T) {
	if h, ok := StateHint("ARIA-Modal"); !ok || h != "Indicates whether a dialog is modal." {
		t.Errorf("StateHint(aria-modal) = %q, %v", h, ok)
	}
	if _, ok := StateHint("aria-valuenow"); ok {
		t.Error("aria-valuenow has no hint")
	}
}

func TestCategoriesAndGrouping(t *testing.T) {
	want := []Category{
		CategoryLiveRegion, CategoryLandmark, CategoryWindow,
		CategoryWidget, CategoryDocumentStructure, CategoryOther,
	}
	if diff := cmp.Diff(want, Categories()); diff != "" {
		t.Fatalf("Categories (-want +got):\n%s", diff)
	}

	total := 0
	for _, c := range Categories() {
		total += len(ByCategory(c))
	}
	if total != len(All()) {
		t.Errorf("categories cover %d roles, table has %d", total, len(All()))
	}

	windows := ByCategory(CategoryWindow)
	if len(windows) != 2 || windows[0].Name != "alertdialog" || windows[1].Name != "dialog" {
		t.Errorf("window roles = %+v", windows)
	}
}

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"document structure", "Document-Structure", "document_structure"} {
		if c, ok := ParseCategory(in); !ok || c != CategoryDocumentStructure {
			t.Errorf("ParseCategory(%q) = %q, %v", in, c, ok)
		}
	}
	if _, ok := ParseCategory("widgets"); ok {
		t.Error("unexpected category match")
	}
}

func TestNamesSortedAndUnique(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatal("Names not sorted")
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Fatal("duplicate role names")
	}
	if len(names) < 70 {
		t.Errorf("expected at least 70 roles, got %d", len(names))
	}
}
