package arialint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"arialint/internal/diag"
	"arialint/internal/roles"
	"arialint/internal/summary"
)

func TestEmptyInput(t *testing.T) {
	if got := DetectSmells(""); got == nil || len(got) != 0 {
		t.Errorf("DetectSmells(\"\") = %#v", got)
	}
	text, changes := GenerateFixedCode("")
	if text != "" || changes == nil || len(changes) != 0 {
		t.Errorf("GenerateFixedCode(\"\") = %q, %#v", text, changes)
	}
	if got := ExtractAriaAttributes(""); got == nil || len(got) != 0 {
		t.Errorf("ExtractAriaAttributes(\"\") = %#v", got)
	}
	if s := Summarize("   "); !s.Empty() {
		t.Errorf("Summarize(blank) = %+v", s)
	}
}

func TestDetectSmellsLegacyStrings(t *testing.T) {
	got := DetectSmells(`<button role="button">Go</button>`)
	want := []string{
		`Native <code>&lt;button&gt;</code> already has the implicit <code>button</code> role. You usually don't need <code>role="button"</code> on semantic elements.`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDetectScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []diag.Code
	}{
		{"named div button", `<div role="button">Click</div>`, []diag.Code{}},
		{"switch without state", `<div role="switch">`, []diag.Code{diag.IntSwitchNoChecked, diag.NamInteractiveUnnamed, diag.AtrMissingRequired}},
		{"tab without tablist", `<div role="tab">Tab 1</div>`, []diag.Code{diag.AtrMissingRequired, diag.StrTabNoTablist}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]diag.Code, 0)
			for _, d := range Detect(tt.src) {
				got = append(got, d.Code)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateFixedCode(t *testing.T) {
	text, changes := GenerateFixedCode(`<button role="button">Go</button>`)
	if text != `<button>Go</button>` {
		t.Errorf("text = %q", text)
	}
	want := []string{
		`Removed redundant <code>role="button"</code> from <code>&lt;button&gt;</code> because the element already has that implicit role.`,
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}

	res := GenerateFix(`<span role="checkbox"/>`)
	if len(res.Changes) != 1 || res.Changes[0].Code != diag.AtrMissingRequired {
		t.Errorf("GenerateFix = %+v", res)
	}
}

func TestFindRole(t *testing.T) {
	r, ok := FindRole("  TabList ")
	if !ok || r.Name != "tablist" || r.Category != roles.CategoryWidget {
		t.Errorf("FindRole = %+v, %v", r, ok)
	}
	if _, ok := FindRole("not-a-role"); ok {
		t.Error("unknown role must not be found")
	}
}

func TestExtractAriaAttributes(t *testing.T) {
	attrs := ExtractAriaAttributes(`<div aria-label="Menu" aria-hidden='true' role="menu">`)
	got := make([]string, 0, len(attrs))
	for _, a := range attrs {
		got = append(got, a.Name+"="+a.Value)
	}
	if diff := cmp.Diff([]string{"aria-label=Menu", "aria-hidden=true"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGetImplicitRoleForTag(t *testing.T) {
	if role, ok := GetImplicitRoleForTag(`<a href="/docs">`, "a"); !ok || role != "link" {
		t.Errorf("a[href] = %q, %v", role, ok)
	}
	if _, ok := GetImplicitRoleForTag("<div>", "div"); ok {
		t.Error("div has no implicit role")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(`<div role="tab" aria-selected="true">Tab</div>`)
	if s.Role.Kind != summary.KindExplicit || s.Role.Role == nil || s.Role.Role.Name != "tab" {
		t.Fatalf("role summary = %+v", s.Role)
	}
	if len(s.Attributes) != 1 || s.Attributes[0].Name != "aria-selected" {
		t.Errorf("attributes = %+v", s.Attributes)
	}
}
