package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testURI = "file:///tmp/snippet.html"

func newTestServer(out io.Writer) *Server {
	return NewServer(bytes.NewReader(nil), out, ServerOptions{
		Debounce: time.Hour,
		Log:      io.Discard,
	})
}

func call(t *testing.T, s *Server, method string, params any) {
	t.Helper()
	payload, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("marshal %s: %v", method, err)
	}
	if err := s.handleMessage(&rpcMessage{Method: method, Params: payload}); err != nil {
		t.Fatalf("%s: %v", method, err)
	}
}

func openDoc(t *testing.T, s *Server, text string) {
	t.Helper()
	call(t, s, "textDocument/didOpen", didOpenTextDocumentParams{
		TextDocument: textDocumentItem{URI: testURI, LanguageID: "html", Version: 1, Text: text},
	})
}

func docSeq(s *Server) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[testURI].seq
}

func readPublishes(t *testing.T, out *bytes.Buffer) []publishDiagnosticsParams {
	t.Helper()
	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	var list []publishDiagnosticsParams
	for {
		payload, err := readMessage(reader)
		if errors.Is(err, io.EOF) {
			return list
		}
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatalf("decode message: %v", err)
		}
		if msg.Method != "textDocument/publishDiagnostics" {
			continue
		}
		var params publishDiagnosticsParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			t.Fatalf("decode params: %v", err)
		}
		list = append(list, params)
	}
}

func codesOf(list []lspDiagnostic) []string {
	codes := make([]string, 0, len(list))
	for _, d := range list {
		codes = append(codes, d.Code)
	}
	slices.Sort(codes)
	return codes
}

func TestPublishDiagnosticsForOpenDocument(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	defer s.stopTimers()

	openDoc(t, s, `<div role="tab">Tab 1</div>`)
	s.runDiagnostics(testURI, docSeq(s))

	pubs := readPublishes(t, &out)
	if len(pubs) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(pubs))
	}
	got := pubs[0]
	if got.URI != testURI || got.Version == nil || *got.Version != 1 {
		t.Fatalf("unexpected publish header: uri=%q version=%v", got.URI, got.Version)
	}
	if diff := cmp.Diff([]string{"ATR4001", "STR5001"}, codesOf(got.Diagnostics)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	for _, d := range got.Diagnostics {
		if d.Source != "arialint" || d.Range.Start.Line != 0 {
			t.Errorf("unexpected diagnostic %+v", d)
		}
		want := 2
		if d.Code == "ATR4001" {
			want = 1
		}
		if d.Severity != want {
			t.Errorf("%s severity = %d, want %d", d.Code, d.Severity, want)
		}
	}
}

func TestStaleDiagnosticsAreDropped(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	defer s.stopTimers()

	openDoc(t, s, `<div role="tab">Tab 1</div>`)
	stale := docSeq(s)
	call(t, s, "textDocument/didChange", didChangeTextDocumentParams{
		TextDocument: versionedTextDocumentIdentifier{URI: testURI, Version: 2},
		ContentChanges: []textDocumentContentChangeEvent{
			{Text: `<div role="tablist"><div role="tab" aria-selected="true">Tab 1</div></div>`},
		},
	})

	s.runDiagnostics(testURI, stale)
	if out.Len() != 0 {
		t.Fatalf("stale run published: %s", out.String())
	}

	s.runDiagnostics(testURI, docSeq(s))
	pubs := readPublishes(t, &out)
	if len(pubs) != 1 || *pubs[0].Version != 2 {
		t.Fatalf("unexpected publishes: %+v", pubs)
	}
	if len(pubs[0].Diagnostics) != 0 {
		t.Fatalf("expected a clean document, got %+v", pubs[0].Diagnostics)
	}
}

func TestDidCloseClearsPublishedDiagnostics(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)

	openDoc(t, s, `<div role="tab">Tab 1</div>`)
	s.runDiagnostics(testURI, docSeq(s))
	call(t, s, "textDocument/didClose", didCloseTextDocumentParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})

	pubs := readPublishes(t, &out)
	if len(pubs) != 2 {
		t.Fatalf("expected 2 publishes, got %d", len(pubs))
	}
	if last := pubs[1]; last.Version != nil || len(last.Diagnostics) != 0 {
		t.Fatalf("close must clear diagnostics, got %+v", last)
	}
	if _, ok := s.snapshot(testURI); ok {
		t.Fatal("closed document still tracked")
	}
}

func TestSettingsFilterSeverity(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)
	defer s.stopTimers()

	openDoc(t, s, `<div role="tab">Tab 1</div>`)
	call(t, s, "workspace/didChangeConfiguration", map[string]any{
		"settings": map[string]any{"arialint": map[string]any{"minSeverity": "error"}},
	})
	s.runDiagnostics(testURI, docSeq(s))

	pubs := readPublishes(t, &out)
	if len(pubs) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(pubs))
	}
	if diff := cmp.Diff([]string{"ATR4001"}, codesOf(pubs[0].Diagnostics)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
}

func TestRunSessionLifecycle(t *testing.T) {
	var in bytes.Buffer
	frame := func(body string) {
		if err := writeMessage(&in, []byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	frame(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"initializationOptions":{"arialint":{"trackDepth":true}}}}`)
	frame(`{"jsonrpc":"2.0","method":"initialized","params":{}}`)
	frame(`{"jsonrpc":"2.0","id":2,"method":"textDocument/definition","params":{}}`)
	frame(`{"jsonrpc":"2.0","id":3,"method":"shutdown"}`)
	frame(`{"jsonrpc":"2.0","method":"exit"}`)

	var out bytes.Buffer
	s := NewServer(&in, &out, ServerOptions{Log: io.Discard})
	if err := s.Run(context.Background()); !errors.Is(err, ErrExit) {
		t.Fatalf("Run = %v, want ErrExit", err)
	}
	if !s.opts.Fix.TrackDepth {
		t.Error("initializationOptions were not applied")
	}

	reader := bufio.NewReader(bytes.NewReader(out.Bytes()))
	var responses []map[string]json.RawMessage
	for {
		payload, err := readMessage(reader)
		if err != nil {
			break
		}
		var msg map[string]json.RawMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Fatal(err)
		}
		responses = append(responses, msg)
	}
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(responses))
	}
	if !strings.Contains(string(responses[0]["result"]), `"hoverProvider":true`) {
		t.Errorf("initialize result = %s", responses[0]["result"])
	}
	if !strings.Contains(string(responses[1]["error"]), "method not found") {
		t.Errorf("unknown method response = %s", responses[1]["error"])
	}
}

func TestExitWithoutShutdown(t *testing.T) {
	var in bytes.Buffer
	if err := writeMessage(&in, []byte(`{"jsonrpc":"2.0","method":"exit"}`)); err != nil {
		t.Fatal(err)
	}
	s := NewServer(&in, io.Discard, ServerOptions{Log: io.Discard})
	if err := s.Run(context.Background()); !errors.Is(err, ErrExitWithoutShutdown) {
		t.Fatalf("Run = %v, want ErrExitWithoutShutdown", err)
	}
}

func TestClosedDocumentIsNotPublished(t *testing.T) {
	var out bytes.Buffer
	s := newTestServer(&out)

	openDoc(t, s, `<div role="tab">Tab 1</div>`)
	seq := docSeq(s)
	call(t, s, "textDocument/didClose", didCloseTextDocumentParams{
		TextDocument: textDocumentIdentifier{URI: testURI},
	})
	s.runDiagnostics(testURI, seq)

	if out.Len() != 0 {
		t.Fatalf("analysis of a closed document was published: %s", out.String())
	}
}
