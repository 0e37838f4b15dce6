package lsp

import (
	"encoding/json"

	"arialint/internal/diag"
)

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	if !s.applySettings(params.Settings) {
		return nil
	}
	s.mu.Lock()
	uris := make([]string, 0, len(s.docs))
	for uri, doc := range s.docs {
		doc.seq++
		uris = append(uris, uri)
	}
	s.mu.Unlock()
	for _, uri := range uris {
		s.scheduleDiagnostics(uri)
	}
	return nil
}

// applySettings merges client settings into the server options and reports
// whether anything affecting diagnostics changed.
func (s *Server) applySettings(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logf("ignoring malformed settings: %v", err)
		return false
	}
	cfg := settings.Arialint

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	if cfg.MinSeverity != nil {
		sev, err := diag.ParseSeverity(*cfg.MinSeverity)
		if err != nil {
			s.logf("ignoring minSeverity: %v", err)
		} else if sev != s.opts.Smell.MinSeverity {
			s.opts.Smell.MinSeverity = sev
			changed = true
		}
	}
	if cfg.TrackDepth != nil {
		s.opts.Fix.TrackDepth = *cfg.TrackDepth
	}
	if cfg.InlayHints.ImplicitRoles != nil {
		s.implicitHints = *cfg.InlayHints.ImplicitRoles
	}
	return changed
}
