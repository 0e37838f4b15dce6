package fix

import (
	"fmt"
	"slices"
	"sort"
)

// candidate is one change together with the edits that implement it.
// Candidates are applied whole or not at all.
type candidate struct {
	edits  []TextEdit
	change Change
}

type skipped struct {
	change Change
	reason string
}

// applyCandidates applies candidates in order against src. All edits refer to
// offsets in src; a candidate whose edits overlap an already accepted edit or
// whose guard text no longer matches is skipped.
func applyCandidates(src []byte, cands []candidate) ([]byte, []Change, []skipped) {
	accepted := make([]TextEdit, 0, len(cands))
	changes := make([]Change, 0, len(cands))
	var skips []skipped

	for _, c := range cands {
		if reason := checkEdits(src, accepted, c.edits); reason != "" {
			skips = append(skips, skipped{change: c.change, reason: reason})
			continue
		}
		accepted = append(accepted, c.edits...)
		changes = append(changes, c.change)
	}
	if len(accepted) == 0 {
		return src, changes, skips
	}

	// с конца, чтобы смещения впереди оставались валидными
	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].Span.Start == accepted[j].Span.Start {
			return accepted[i].Span.End > accepted[j].Span.End
		}
		return accepted[i].Span.Start > accepted[j].Span.Start
	})

	out := slices.Clone(src)
	for _, e := range accepted {
		out = slices.Replace(out, int(e.Span.Start), int(e.Span.End), []byte(e.NewText)...)
	}
	return out, changes, skips
}

func checkEdits(src []byte, accepted, edits []TextEdit) string {
	for i, e := range edits {
		if e.Span.End < e.Span.Start || int(e.Span.End) > len(src) {
			return "edit span out of range"
		}
		if e.OldText != "" && string(src[e.Span.Start:e.Span.End]) != e.OldText {
			return "existing text does not match expected content"
		}
		for _, prev := range accepted {
			if spansConflict(prev, e) {
				return fmt.Sprintf("conflicts with previously applied edit at %d", prev.Span.Start)
			}
		}
		for _, other := range edits[:i] {
			if spansConflict(other, e) {
				return "edits of one change overlap"
			}
		}
	}
	return ""
}

// spansConflict reports whether two edits overlap. Spans are half-open;
// two insertions never conflict, an insertion conflicts with a non-empty span
// only when it falls strictly inside it.
func spansConflict(a, b TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart < aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart < bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}
