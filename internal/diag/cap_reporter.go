package diag

// CapReporter wraps another Reporter and forwards at most caps[code]
// diagnostics per code. Codes without an entry, or with cap 0, are unlimited.
type CapReporter struct {
	next   Reporter
	caps   map[Code]int
	counts map[Code]int
}

// NewCapReporter returns a Reporter enforcing caps in front of next.
func NewCapReporter(next Reporter, caps map[Code]int) *CapReporter {
	return &CapReporter{
		next:   next,
		caps:   caps,
		counts: make(map[Code]int),
	}
}

// Exhausted reports whether further diagnostics with code would be dropped.
func (r *CapReporter) Exhausted(code Code) bool {
	limit := r.caps[code]
	return limit > 0 && r.counts[code] >= limit
}

func (r *CapReporter) Report(d Diagnostic) {
	if r == nil || r.Exhausted(d.Code) {
		return
	}
	r.counts[d.Code]++
	if r.next != nil {
		r.next.Report(d)
	}
}
