package diag

import "arialint/internal/source"

// Reporter: минимальный контракт получения диагностик от проходов детектора.
// Реализации: BagReporter (кладёт в Bag), CapReporter (лимит на код), FilterReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, primary, msg),
	}
}

// ReportCode starts a diagnostic with the code's default severity.
func ReportCode(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, code.DefaultSeverity(), code, primary, msg)
}

// WithSubject records what the diagnostic is about.
func (b *ReportBuilder) WithSubject(s Subject) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Subject = s
	return b
}

// WithNote appends a note to diagnostic.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{Span: sp, Msg: msg})
	return b
}

// Emit sends diagnostic to underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns accumulated diagnostic without emitting.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// FilterReporter drops disabled codes and diagnostics below MinSeverity.
type FilterReporter struct {
	Next        Reporter
	Disabled    map[Code]bool
	MinSeverity Severity
}

func (r FilterReporter) Report(d Diagnostic) {
	if r.Next == nil || r.Disabled[d.Code] || d.Severity < r.MinSeverity {
		return
	}
	r.Next.Report(d)
}
