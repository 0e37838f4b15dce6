package lsp

import (
	"encoding/json"

	"arialint/internal/markup"
	"arialint/internal/semantics"
	"arialint/internal/source"
)

const inlayHintKindType = 1

func (s *Server) handleInlayHint(msg *rpcMessage) error {
	var params inlayHintParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	s.mu.Lock()
	enabled := s.implicitHints
	s.mu.Unlock()
	file, ok := s.snapshot(params.TextDocument.URI)
	if !ok || !enabled {
		return s.sendResponse(msg.ID, []inlayHint{})
	}
	return s.sendResponse(msg.ID, buildInlayHints(file, params.Range))
}

// buildInlayHints labels tags without an explicit role with the role they
// carry natively.
func buildInlayHints(file *source.File, r lspRange) []inlayHint {
	from := offsetForPositionInFile(file, r.Start)
	to := offsetForPositionInFile(file, r.End)
	hints := make([]inlayHint, 0)
	for tag := range markup.ScanFile(file.Content, file.ID) {
		if tag.Span.Start > to {
			break
		}
		if tag.Span.End < from || tag.Has("role") {
			continue
		}
		role, ok := semantics.ImplicitRoleOf(tag)
		if !ok {
			continue
		}
		hints = append(hints, inlayHint{
			Position:    positionForOffsetInFile(file, tag.NameSpan.End),
			Label:       ":" + role,
			Kind:        inlayHintKindType,
			PaddingLeft: true,
		})
	}
	return hints
}
