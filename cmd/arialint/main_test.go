package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"arialint/internal/diag"
	"arialint/internal/driver"
	"arialint/internal/roles"
	"arialint/internal/smell"
	"arialint/internal/version"
)

const tabSnippet = `<div role="tab">Tab 1</div>`

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{" AUTO ", uiModeAuto, false},
		{"on", uiModeOn, false},
		{"Off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("readUIMode(%q) = (%q, %v), want %q (err %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestRenderDiagnosticsExitStatus(t *testing.T) {
	warnOnly := driver.Options{Smell: smell.Options{Disabled: map[diag.Code]bool{diag.AtrMissingRequired: true}}}
	tests := []struct {
		name   string
		opts   driver.Options
		render diagRender
		want   bool
	}{
		{"error fails", driver.Options{}, diagRender{format: "short"}, true},
		{"warning passes", warnOnly, diagRender{format: "short"}, false},
		{"warnings as errors", warnOnly, diagRender{format: "short", warningsAsErrors: true}, true},
		{"no warnings hides warning", warnOnly, diagRender{format: "short", noWarnings: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := driver.DiagnoseSnippet(context.Background(), "tab.html", tabSnippet, tt.opts)
			var buf bytes.Buffer
			got, err := renderDiagnostics(&buf, res, tt.render)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("failed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderDiagnosticsJSONDropsWarnings(t *testing.T) {
	res := driver.DiagnoseSnippet(context.Background(), "tab.html", tabSnippet, driver.Options{})
	var buf bytes.Buffer
	if _, err := renderDiagnostics(&buf, res, diagRender{format: "json", noWarnings: true}); err != nil {
		t.Fatal(err)
	}
	var out struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || out.Diagnostics[0].Code != diag.AtrMissingRequired.ID() {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestRenderDiagnosticsHTMLPlaceholders(t *testing.T) {
	blank := driver.DiagnoseSnippet(context.Background(), "blank.html", "  \n", driver.Options{})
	if !blankInput(blank) {
		t.Fatal("whitespace-only snippet must count as blank")
	}
	var buf bytes.Buffer
	if _, err := renderDiagnostics(&buf, blank, diagRender{format: "html"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Paste code") {
		t.Errorf("blank snippet output = %q", buf.String())
	}

	clean := driver.DiagnoseSnippet(context.Background(), "clean.html", `<nav>Menu</nav>`, driver.Options{})
	if blankInput(clean) {
		t.Fatal("non-empty snippet must not count as blank")
	}
	buf.Reset()
	if _, err := renderDiagnostics(&buf, clean, diagRender{format: "html"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No obvious ARIA issues") {
		t.Errorf("clean snippet output = %q", buf.String())
	}
}

func TestFilterRoles(t *testing.T) {
	var got []string
	for _, r := range filterRoles(roles.All(), " TAB") {
		got = append(got, r.Name)
	}
	want := []string{"tab", "tablist", "tabpanel", "table"}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if filterRoles(roles.All(), "nothing-like-this") != nil {
		t.Error("no match must yield nil")
	}
}

func TestPrintHTML5Tags(t *testing.T) {
	var buf bytes.Buffer
	if err := printHTML5Tags(&buf, []byte(`<DIV Role="tab">x</DIV><br/>`)); err != nil {
		t.Fatal(err)
	}
	want := "  1: div [role=\"tab\"]\n  2: br (self-closing)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := version.Info{Version: "1.2.3"}
	if err := renderVersionJSON(&buf, info, versionOptions{format: "json", showHash: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	want := versionPayload{Tool: "arialint", Version: "1.2.3", Tagline: versionTagline, GitCommit: "unknown"}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
