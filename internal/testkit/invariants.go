// Package testkit holds invariant checks shared by package tests and the
// fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"arialint/internal/diag"
	"arialint/internal/markup"
	"arialint/internal/source"
)

// CheckTagSpans runs the span invariants of the tag scanner on sf:
// 1) every tag span is non-empty, inside the content and runs from '<' to '>'
// 2) tags are ordered and do not overlap
// 3) the name and every attribute lie inside the tag, in order
func CheckTagSpans(sf *source.File, tags []markup.Tag) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tag := range tags {
		sp := tag.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("tag %d (%s): empty span %v", i, tag.Name, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("tag %d (%s): span file mismatch: got=%d want=%d", i, tag.Name, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("tag %d (%s): span end beyond content: %d > %d", i, tag.Name, sp.End, lenContent)
		}
		if sf.Content[sp.Start] != '<' || sf.Content[sp.End-1] != '>' {
			return fmt.Errorf("tag %d (%s): span %v is not delimited by <...>", i, tag.Name, sp)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("tag %d (%s): span %v overlaps the previous tag", i, tag.Name, sp)
		}
		prevEnd = sp.End

		if !sp.Contains(tag.NameSpan) {
			return fmt.Errorf("tag %d (%s): name span %v outside %v", i, tag.Name, tag.NameSpan, sp)
		}
		attrEnd := tag.NameSpan.End
		for _, a := range tag.Attrs {
			if a.Span.Start < attrEnd || !sp.Contains(a.Span) {
				return fmt.Errorf("tag %d (%s): attribute %s span %v out of order", i, tag.Name, a.Name, a.Span)
			}
			attrEnd = a.Span.End
		}
	}
	return nil
}

// CheckDiagnosticSpans verifies that every primary span points into sf.
func CheckDiagnosticSpans(sf *source.File, diags []diag.Diagnostic) error {
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	for _, d := range diags {
		sp := d.Primary
		if sp.File != sf.ID {
			return fmt.Errorf("%s: span file mismatch: got=%d want=%d", d.Code.ID(), sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("%s: span %v outside content of %d bytes", d.Code.ID(), sp, lenContent)
		}
	}
	return nil
}
