package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"arialint/internal/fix"
	"arialint/internal/source"
)

const quickFixKind = "quickfix"

func (s *Server) handleCodeAction(msg *rpcMessage) error {
	var params codeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	if !wantsKind(params.Context.Only, quickFixKind) {
		return s.sendResponse(msg.ID, []codeAction{})
	}
	file, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, []codeAction{})
	}
	s.mu.Lock()
	opts := s.opts.Fix
	s.mu.Unlock()

	uri := canonicalURI(params.TextDocument.URI)
	return s.sendResponse(msg.ID, buildCodeActions(uri, file, params.Context.Diagnostics, opts))
}

// buildCodeActions offers one action that applies every autofix to the whole
// document. Fixes are whole-snippet passes, so edits are not split per range.
func buildCodeActions(uri string, file *source.File, context []lspDiagnostic, opts fix.Options) []codeAction {
	res := fix.Generate(file.Content, opts)
	if !res.Changed() {
		return []codeAction{}
	}
	fixed := make(map[string]bool, len(res.Changes))
	for _, c := range res.Changes {
		fixed[c.Code.ID()] = true
	}
	var covered []lspDiagnostic
	for _, d := range context {
		if fixed[d.Code] {
			covered = append(covered, d)
		}
	}

	title := "Apply ARIA fix: " + strings.ReplaceAll(res.Changes[0].Message, "`", "")
	if n := len(res.Changes); n > 1 {
		title = fmt.Sprintf("Apply %d ARIA fixes", n)
	}
	whole := lspRange{End: positionForOffsetInFile(file, safeUint32(len(file.Content)))}
	return []codeAction{{
		Title:       title,
		Kind:        quickFixKind,
		Diagnostics: covered,
		IsPreferred: true,
		Edit: &workspaceEdit{Changes: map[string][]textEdit{
			uri: {{Range: whole, NewText: res.Text}},
		}},
	}}
}

// wantsKind: an empty filter allows everything; "quickfix" also matches
// a requested "quickfix" parent or sub-kind.
func wantsKind(only []string, kind string) bool {
	if len(only) == 0 {
		return true
	}
	for _, k := range only {
		if k == kind || strings.HasPrefix(kind, k+".") || strings.HasPrefix(k, kind+".") {
			return true
		}
	}
	return false
}
