package lsp

import (
	"time"

	"arialint/internal/diag"
	"arialint/internal/driver"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// scheduleDiagnostics (re)starts the debounce timer of one document.
func (s *Server) scheduleDiagnostics(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.docs[uri]
	if doc == nil {
		return
	}
	if t := s.timers[uri]; t != nil {
		t.Stop()
	}
	seq := doc.seq
	s.timers[uri] = time.AfterFunc(s.debounce, func() {
		s.runDiagnostics(uri, seq)
	})
}

// runDiagnostics checks the document if it is still at seq and publishes
// the result unless an edit arrived meanwhile.
func (s *Server) runDiagnostics(uri string, seq uint64) {
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil || doc.seq != seq {
		s.mu.Unlock()
		return
	}
	text, docVersion := doc.text, doc.version
	opts := s.opts
	ctx := s.baseCtx
	s.mu.Unlock()

	start := time.Now()
	res := driver.DiagnoseSnippet(ctx, displayName(uri), text, opts)
	fr := res.Files[0]
	list := toLSPDiagnostics(res.FileSet.Get(fr.FileID), fr.Diagnostics)
	trace.Point(trace.FromContext(ctx), trace.ScopeDriver, "lsp:diagnostics", uri, trace.CurrentSpan(ctx).SpanID)

	// publish under mu: a didClose or edit must not slip in between the
	// seq check and the send
	s.mu.Lock()
	if doc := s.docs[uri]; doc == nil || doc.seq != seq {
		s.mu.Unlock()
		return
	}
	s.published[uri] = len(list) > 0
	err := s.sendPublish(uri, &docVersion, list)
	s.mu.Unlock()
	if err != nil {
		s.logf("failed to publish diagnostics: %v", err)
		return
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		s.logf("slow analysis of %s: %s", uri, elapsed)
	}
}

func toLSPDiagnostics(file *source.File, diags []diag.Diagnostic) []lspDiagnostic {
	out := make([]lspDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, lspDiagnostic{
			Range:    rangeForSpan(file, d.Primary),
			Severity: lspSeverity(d.Severity),
			Code:     d.Code.ID(),
			Source:   "arialint",
			Message:  d.Message,
		})
	}
	return out
}

// lspSeverity maps onto DiagnosticSeverity: 1 error, 2 warning, 3 information.
func lspSeverity(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 1
	case diag.SevWarning:
		return 2
	default:
		return 3
	}
}
