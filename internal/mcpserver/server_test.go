package mcpserver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"arialint/internal/diag"
	"arialint/internal/driver"
	"arialint/internal/smell"
)

func TestMCPRegistersTools(t *testing.T) {
	if New(driver.Options{}).MCP() == nil {
		t.Fatal("MCP() returned nil")
	}
}

func TestDetectTool(t *testing.T) {
	s := New(driver.Options{})
	_, out, err := s.handleDetect(context.Background(), nil, snippetInput{Snippet: `<div role="tab">Tab 1</div>`})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Messages) != 2 {
		t.Fatalf("out = %+v", out)
	}
	got := []string{out.Diagnostics[0].Code, out.Diagnostics[1].Code}
	if diff := cmp.Diff([]string{"ATR4001", "STR5001"}, got); diff != "" {
		t.Errorf("codes (-want +got):\n%s", diff)
	}
	if out.Diagnostics[0].Severity != "error" || out.Diagnostics[0].Location.File != snippetName {
		t.Errorf("first diagnostic = %+v", out.Diagnostics[0])
	}
}

func TestDetectToolHonoursOptions(t *testing.T) {
	s := New(driver.Options{Smell: smell.Options{Disabled: map[diag.Code]bool{diag.StrTabNoTablist: true}}})
	_, out, err := s.handleDetect(context.Background(), nil, snippetInput{Snippet: `<div role="tab">Tab 1</div>`})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Diagnostics[0].Code != "ATR4001" {
		t.Errorf("out = %+v", out)
	}
}

func TestDetectToolEmptySnippet(t *testing.T) {
	_, out, err := New(driver.Options{}).handleDetect(context.Background(), nil, snippetInput{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Diagnostics == nil || out.Messages == nil || out.Count != 0 {
		t.Errorf("empty snippet output = %#v", out)
	}
}

func TestFixTool(t *testing.T) {
	_, out, err := New(driver.Options{}).handleFix(context.Background(), nil, fixInput{Snippet: `<span role="checkbox"/>`})
	if err != nil {
		t.Fatal(err)
	}
	if out.Text != `<span role="checkbox" aria-checked="false"/>` {
		t.Errorf("text = %q", out.Text)
	}
	if !out.Changed || !out.Idempotent || len(out.Changes) != 1 || len(out.Messages) != 1 {
		t.Errorf("out = %+v", out)
	}
	if out.Changes[0].Code != "ATR4001" {
		t.Errorf("change code = %q", out.Changes[0].Code)
	}
}

func TestFindRoleTool(t *testing.T) {
	s := New(driver.Options{})
	_, out, err := s.handleFindRole(context.Background(), nil, findRoleInput{Name: " Checkbox "})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Found || out.Name != "checkbox" {
		t.Fatalf("out = %+v", out)
	}
	if diff := cmp.Diff([]string{"aria-checked"}, out.Required); diff != "" {
		t.Errorf("required (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"aria-selected"}, out.Discouraged); diff != "" {
		t.Errorf("discouraged (-want +got):\n%s", diff)
	}

	_, out, err = s.handleFindRole(context.Background(), nil, findRoleInput{Name: "nope"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Found || out.Required == nil {
		t.Errorf("unknown role output = %#v", out)
	}
}

func TestListRolesTool(t *testing.T) {
	s := New(driver.Options{})
	_, all, err := s.handleListRoles(context.Background(), nil, listRolesInput{})
	if err != nil {
		t.Fatal(err)
	}
	_, landmarks, err := s.handleListRoles(context.Background(), nil, listRolesInput{Category: "landmark"})
	if err != nil {
		t.Fatal(err)
	}
	if len(landmarks.Roles) == 0 || len(landmarks.Roles) >= len(all.Roles) {
		t.Errorf("landmarks = %d of %d roles", len(landmarks.Roles), len(all.Roles))
	}
	if _, _, err := s.handleListRoles(context.Background(), nil, listRolesInput{Category: "bogus"}); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

func TestAttributesTool(t *testing.T) {
	_, out, err := New(driver.Options{}).handleAttributes(context.Background(), nil, snippetInput{
		Snippet: `<div role="tab" aria-expanded="true" aria-selected="true">x</div>`,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Attributes) != 2 {
		t.Fatalf("attributes = %+v", out.Attributes)
	}
	if out.Attributes[0].Name != "aria-expanded" || !out.Attributes[0].Issue {
		t.Errorf("first attribute = %+v", out.Attributes[0])
	}
}

func TestImplicitRoleTool(t *testing.T) {
	s := New(driver.Options{})
	tests := []struct {
		in   implicitRoleInput
		want implicitRoleOutput
	}{
		{implicitRoleInput{TagName: "a", TagText: `href="/"`}, implicitRoleOutput{Found: true, Role: "link"}},
		{implicitRoleInput{TagName: "input", TagText: `<input type="checkbox">`}, implicitRoleOutput{Found: true, Role: "checkbox"}},
		{implicitRoleInput{TagName: "div"}, implicitRoleOutput{}},
	}
	for _, tt := range tests {
		_, got, err := s.handleImplicitRole(context.Background(), nil, tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%+v: got %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestSummarizeTool(t *testing.T) {
	s := New(driver.Options{})
	_, out, err := s.handleSummarize(context.Background(), nil, snippetInput{Snippet: `<nav><a href="/">Home</a></nav>`})
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != "implicit" || out.Role != "navigation" || out.Category != "landmark" {
		t.Errorf("out = %+v", out)
	}
	if diff := cmp.Diff([]string{"navigation", "link"}, out.Implicit); diff != "" {
		t.Errorf("implicit (-want +got):\n%s", diff)
	}
	if out.Tags != 2 || out.Detected == nil {
		t.Errorf("out = %#v", out)
	}
}
