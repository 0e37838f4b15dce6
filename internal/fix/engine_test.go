package fix

import (
	"testing"

	"arialint/internal/source"
)

func TestApplyCandidatesGuardsAndConflicts(t *testing.T) {
	src := []byte(`<div a="1" b="2">`)
	span := func(start, end uint32) source.Span { return source.Span{Start: start, End: end} }

	cands := []candidate{
		{edits: []TextEdit{Replace(span(5, 10), `x="9"`, `a="1"`)}, change: Change{Message: "replace a"}},
		{edits: []TextEdit{Delete(span(8, 12), "")}, change: Change{Message: "overlaps a"}},
		{edits: []TextEdit{Delete(span(11, 16), `c="3"`)}, change: Change{Message: "stale guard"}},
		{edits: []TextEdit{Insert(0, 16, ` c="3"`)}, change: Change{Message: "append"}},
		{edits: []TextEdit{Insert(0, 99, "!")}, change: Change{Message: "out of range"}},
	}
	out, changes, skips := applyCandidates(src, cands)

	if got, want := string(out), `<div x="9" b="2" c="3">`; got != want {
		t.Errorf("out = %s, want %s", got, want)
	}
	if len(changes) != 2 || changes[0].Message != "replace a" || changes[1].Message != "append" {
		t.Errorf("changes = %+v", changes)
	}
	if len(skips) != 3 {
		t.Fatalf("expected 3 skipped candidates, got %+v", skips)
	}
	if skips[1].reason != "existing text does not match expected content" {
		t.Errorf("stale guard reason = %q", skips[1].reason)
	}
	if skips[2].reason != "edit span out of range" {
		t.Errorf("range reason = %q", skips[2].reason)
	}
}

func TestApplyCandidatesWithoutEdits(t *testing.T) {
	src := []byte("<p>")
	out, changes, skips := applyCandidates(src, nil)
	if string(out) != "<p>" || changes == nil || len(changes) != 0 || len(skips) != 0 {
		t.Fatalf("unexpected result %q %v %v", out, changes, skips)
	}
}

func TestSpansConflict(t *testing.T) {
	edit := func(start, end uint32) TextEdit { return TextEdit{Span: source.Span{Start: start, End: end}} }
	tests := []struct {
		a, b TextEdit
		want bool
	}{
		{edit(1, 1), edit(1, 1), false},
		{edit(2, 2), edit(1, 4), true},
		{edit(1, 1), edit(1, 4), false},
		{edit(4, 4), edit(1, 4), false},
		{edit(1, 3), edit(2, 5), true},
		{edit(1, 3), edit(3, 5), false},
	}
	for _, tt := range tests {
		if got := spansConflict(tt.a, tt.b); got != tt.want {
			t.Errorf("spansConflict(%v, %v) = %v, want %v", tt.a.Span, tt.b.Span, got, tt.want)
		}
	}
}
