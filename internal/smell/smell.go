// Package smell is the rule engine that looks for ARIA misuse in a snippet.
//
// Five passes run in a fixed order and append to one list: role semantics,
// interaction, accessible name, attribute validity and structure. Within a
// pass, findings follow the left-to-right order of the tags.
package smell

import (
	"maps"
	"strconv"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// Options tune a detector run. The zero value applies the default caps.
type Options struct {
	// Caps override DefaultCaps per code; 0 means unlimited.
	Caps        map[diag.Code]int
	Disabled    map[diag.Code]bool
	MinSeverity diag.Severity

	Tracer     trace.Tracer
	ParentSpan uint64
}

// DefaultCaps limits the rules that only report their first hit per snippet.
func DefaultCaps() map[diag.Code]int {
	return map[diag.Code]int{
		diag.RolPresentationalFocusable: 1,
		diag.IntMouseOnly:               1,
		diag.IntExpandedNoControls:      1,
		diag.IntTabExpanded:             1,
	}
}

func (o Options) caps() map[diag.Code]int {
	caps := DefaultCaps()
	maps.Copy(caps, o.Caps)
	return caps
}

// snippet is the scanned input shared by all passes.
type snippet struct {
	src  []byte
	file source.FileID
	tags []markup.Tag
}

func (s *snippet) firstWithRole(roles ...string) (markup.Tag, bool) {
	for _, t := range s.tags {
		role := t.Role()
		for _, r := range roles {
			if role == r {
				return t, true
			}
		}
	}
	return markup.Tag{}, false
}

func (s *snippet) hasRole(roles ...string) bool {
	_, ok := s.firstWithRole(roles...)
	return ok
}

type pass struct {
	name string
	run  func(s *snippet, r diag.Reporter)
}

var passes = []pass{
	{"role-semantics", roleSemantics},
	{"interaction", interaction},
	{"accessible-name", accessibleName},
	{"attributes", attributes},
	{"structure", structure},
}

// Detect analyses one file of a FileSet.
func Detect(file *source.File, opts Options) []diag.Diagnostic {
	return detect(file.Content, file.ID, opts)
}

// DetectBytes analyses src with spans attributed to file 0.
func DetectBytes(src []byte, opts Options) []diag.Diagnostic {
	return detect(src, 0, opts)
}

// DetectString analyses a snippet with default options.
func DetectString(snippetText string) []diag.Diagnostic {
	return detect([]byte(snippetText), 0, Options{})
}

func detect(src []byte, file source.FileID, opts Options) []diag.Diagnostic {
	bag := diag.NewBag(0)
	if len(src) == 0 {
		return bag.Items()
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}

	var reporter diag.Reporter = diag.NewCapReporter(diag.BagReporter{Bag: bag}, opts.caps())
	reporter = diag.FilterReporter{Next: reporter, Disabled: opts.Disabled, MinSeverity: opts.MinSeverity}

	s := &snippet{src: src, file: file, tags: markup.Tags(src, file)}
	for _, p := range passes {
		before := bag.Len()
		span := trace.Begin(tracer, trace.ScopePass, "pass:"+p.name, opts.ParentSpan)
		p.run(s, reporter)
		span.WithExtra("reported", strconv.Itoa(bag.Len()-before)).End("")
	}
	return bag.Items()
}
