package fix

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"arialint/internal/diag"
)

func changeCodes(res Result) []diag.Code {
	out := make([]diag.Code, 0, len(res.Changes))
	for _, c := range res.Changes {
		out = append(out, c.Code)
	}
	return out
}

func TestGenerateEmpty(t *testing.T) {
	res := GenerateString("")
	if res.Text != "" || res.Changes == nil || len(res.Changes) != 0 {
		t.Fatalf("GenerateString(\"\") = %#v", res)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  string
		codes []diag.Code
	}{
		{
			name:  "named div button is left alone",
			src:   `<div role="button">Click</div>`,
			want:  `<div role="button">Click</div>`,
			codes: []diag.Code{},
		},
		{
			name:  "redundant button role",
			src:   `<button role="button">Go</button>`,
			want:  `<button>Go</button>`,
			codes: []diag.Code{diag.RolRedundant},
		},
		{
			name:  "redundant role between attributes",
			src:   `<button class="x"  role="button" id="b">Go</button>`,
			want:  `<button class="x" id="b">Go</button>`,
			codes: []diag.Code{diag.RolRedundant},
		},
		{
			name:  "redundant landmark and link",
			src:   `<nav role=" Navigation " aria-label="Main"><a href="/x" role='link'>x</a></nav>`,
			want:  `<nav aria-label="Main"><a href="/x">x</a></nav>`,
			codes: []diag.Code{diag.RolRedundant, diag.RolRedundant},
		},
		{
			name:  "link without href keeps role",
			src:   `<a role="link">x</a>`,
			want:  `<a role="link">x</a>`,
			codes: []diag.Code{},
		},
		{
			name:  "switch gets aria-checked",
			src:   `<div role="switch">`,
			want:  `<div role="switch" aria-checked="false">`,
			codes: []diag.Code{diag.AtrMissingRequired},
		},
		{
			name:  "self-closing checkbox",
			src:   `<span role="checkbox"/>`,
			want:  `<span role="checkbox" aria-checked="false"/>`,
			codes: []diag.Code{diag.AtrMissingRequired},
		},
		{
			name:  "checkbox with state",
			src:   `<span role="checkbox" aria-checked="true"></span>`,
			want:  `<span role="checkbox" aria-checked="true"></span>`,
			codes: []diag.Code{},
		},
		{
			name:  "slider gets missing range attributes",
			src:   `<div role="slider" aria-valuenow="5"></div>`,
			want:  `<div role="slider" aria-valuenow="5" aria-valuemin="0" aria-valuemax="100"></div>`,
			codes: []diag.Code{diag.AtrMissingRequired},
		},
		{
			name:  "complete spinbutton",
			src:   `<div role="spinbutton" aria-valuemin="1" aria-valuemax="9" aria-valuenow="3"></div>`,
			want:  `<div role="spinbutton" aria-valuemin="1" aria-valuemax="9" aria-valuenow="3"></div>`,
			codes: []diag.Code{},
		},
		{
			name:  "lone tab",
			src:   `<div role="tab">Tab 1</div>`,
			want:  `<div role="tab">Tab 1</div>`,
			codes: []diag.Code{},
		},
		{
			name:  "container of a tab",
			src:   `<div><div role="tab">A</div></div>`,
			want:  `<div role="tablist"><div role="tab">A</div></div>`,
			codes: []diag.Code{diag.StrTabNoTablist},
		},
		{
			name:  "list of tabs",
			src:   `<ul class="tabs"><li role="tab">A</li><li role="tab">B</li></ul>`,
			want:  `<ul class="tabs" role="tablist"><li role="tab">A</li><li role="tab">B</li></ul>`,
			codes: []diag.Code{diag.StrTabNoTablist},
		},
		{
			name:  "roled container",
			src:   `<div role="group"><div role="tab">A</div></div>`,
			want:  `<div role="group"><div role="tab">A</div></div>`,
			codes: []diag.Code{},
		},
		{
			name:  "unquoted role on container",
			src:   `<div role=tablist><b role="tab">x</b></div>`,
			want:  `<div role=tablist><b role="tab">x</b></div>`,
			codes: []diag.Code{},
		},
		{
			name:  "bare role on container",
			src:   `<div role><b role="tab">x</b></div>`,
			want:  `<div role><b role="tab">x</b></div>`,
			codes: []diag.Code{},
		},
		{
			name:  "passes run in order",
			src:   `<div role="switch"></div><button role="button">Go</button>`,
			want:  `<div role="switch" aria-checked="false"></div><button>Go</button>`,
			codes: []diag.Code{diag.RolRedundant, diag.AtrMissingRequired},
		},
		{
			name:  "unrelated markup",
			src:   "<!-- c -->\n<p>Hello <b>world</b></p>",
			want:  "<!-- c -->\n<p>Hello <b>world</b></p>",
			codes: []diag.Code{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := GenerateString(tt.src)
			if res.Text != tt.want {
				t.Errorf("text:\n got %s\nwant %s", res.Text, tt.want)
			}
			if diff := cmp.Diff(tt.codes, changeCodes(res)); diff != "" {
				t.Errorf("changes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChangeMessages(t *testing.T) {
	res := GenerateString(`<button role="button">Go</button>`)
	want := []string{"Removed redundant `role=\"button\"` from `<button>` because the element already has that implicit role."}
	if diff := cmp.Diff(want, res.Messages()); diff != "" {
		t.Errorf("messages (-want +got):\n%s", diff)
	}
	got := res.Changes[0].Subject
	if got.Attr != "role" || got.Tag != "button" || got.Role != "button" {
		t.Errorf("subject = %+v", got)
	}
}

func TestWrapTablistDepth(t *testing.T) {
	src := []byte(`<div><div>x</div><div role="tab">A</div></div>`)

	res := Generate(src, Options{})
	if res.Changed() {
		t.Fatalf("first-close matching must not wrap, got %s", res.Text)
	}

	res = Generate(src, Options{TrackDepth: true})
	want := `<div role="tablist"><div>x</div><div role="tab">A</div></div>`
	if res.Text != want {
		t.Fatalf("depth-aware matching:\n got %s\nwant %s", res.Text, want)
	}
}

func TestVerifyIdempotent(t *testing.T) {
	inputs := []string{
		`<button role="button">Go</button>`,
		`<div role="switch">`,
		`<div role="slider"></div>`,
		`<div><div role="tab">A</div><div role="tab" aria-selected="true">B</div></div>`,
		`<section><ul><li role="tab">x</li></ul></section>`,
	}
	for _, in := range inputs {
		first, ok := Verify([]byte(in), Options{})
		if !ok {
			again := GenerateString(first.Text)
			t.Errorf("%s: second run changed %q into %q", in, first.Text, again.Text)
		}
	}
}
