// Package fix rewrites a snippet with a small set of conservative ARIA
// corrections and reports what it changed.
//
// Generate runs four passes in order. Each pass scans the output of the
// previous one, collects guarded text edits and applies them from the end of
// the text towards the start:
//
//  1. remove a role attribute equal to the element's implicit role;
//  2. add aria-checked="false" to switch and checkbox roles;
//  3. add the aria-valuemin/max/now defaults to slider and spinbutton roles;
//  4. add role="tablist" to an un-roled container wrapping role="tab".
//
// Text outside the edited attributes is never touched.
package fix

import (
	"strconv"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// Options tune Generate. The zero value reproduces the classic behaviour.
type Options struct {
	// TrackDepth makes the tablist pass pair a container with its matching
	// closing tag instead of the first closing tag of the same name.
	TrackDepth bool

	Tracer     trace.Tracer
	ParentSpan uint64
}

// Change describes one applied correction.
type Change struct {
	Code    diag.Code    `json:"code"`
	Subject diag.Subject `json:"subject"`
	// Message uses backticks around code-like fragments, like diagnostics.
	Message string `json:"message"`
	// Span locates the edited tag in the text the pass ran on.
	Span source.Span `json:"-"`
}

// Result is the fixed text and the ordered change log. Changes is never nil.
type Result struct {
	Text    string   `json:"text"`
	Changes []Change `json:"changes"`
}

// Changed reports whether any pass applied an edit.
func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Messages returns the change log as plain messages.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		out = append(out, c.Message)
	}
	return out
}

type pass struct {
	name string
	run  func(src []byte, tags []markup.Tag, opts Options) []candidate
}

var passes = []pass{
	{"redundant-role", redundantRoles},
	{"default-checked", defaultChecked},
	{"default-value-range", defaultValueRange},
	{"wrap-tablist", wrapTablist},
}

// Generate applies all passes to src.
func Generate(src []byte, opts Options) Result {
	res := Result{Changes: make([]Change, 0)}
	if len(src) == 0 {
		return res
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}

	text := src
	for _, p := range passes {
		span := trace.Begin(tracer, trace.ScopePass, "fix:"+p.name, opts.ParentSpan)
		cands := p.run(text, markup.Tags(text, 0), opts)
		out, changes, skips := applyCandidates(text, cands)
		for _, s := range skips {
			trace.Point(tracer, trace.ScopePass, "fix:skipped", s.reason, span.ID())
		}
		text = out
		res.Changes = append(res.Changes, changes...)
		span.WithExtra("changes", strconv.Itoa(len(changes))).End("")
	}
	res.Text = string(text)
	return res
}

// GenerateString is Generate with default options.
func GenerateString(snippet string) Result {
	return Generate([]byte(snippet), Options{})
}

// Verify runs Generate twice and reports whether the second run was a no-op.
// It returns the result of the first run.
func Verify(src []byte, opts Options) (Result, bool) {
	first := Generate(src, opts)
	second := Generate([]byte(first.Text), opts)
	return first, !second.Changed() && second.Text == first.Text
}
