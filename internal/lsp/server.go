// Package lsp serves arialint over the Language Server Protocol on stdio:
// diagnostics for open markup documents, hovers for roles and aria-*
// attributes, implicit-role inlay hints and a quick fix that applies the
// conservative autofixes.
package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"arialint/internal/driver"
	"arialint/internal/source"
	"arialint/internal/version"
)

var (
	// ErrExit is returned by Run after "shutdown" followed by "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown is returned when the client sends "exit" first.
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// ServerOptions tunes a Server.
type ServerOptions struct {
	// Debounce is the quiet period after an edit before a document is
	// re-checked; 0 means 200ms.
	Debounce time.Duration
	// Driver carries detector and fixer settings. Cache, progress and
	// timings are not used.
	Driver driver.Options
	// Log receives diagnostics about the server itself; nil means stderr.
	Log io.Writer
}

type document struct {
	text    string
	version int
	// seq grows with every edit; stale analyses compare against it.
	seq uint64
}

// Server handles stdio JSON-RPC for arialint.
type Server struct {
	in     *bufio.Reader
	out    *bufio.Writer
	log    io.Writer
	sendMu sync.Mutex

	mu                sync.Mutex
	docs              map[string]*document
	timers            map[string]*time.Timer
	published         map[string]bool
	opts              driver.Options
	implicitHints     bool
	debounce          time.Duration
	shutdownRequested bool
	baseCtx           context.Context
}

// NewServer wires a server to the given streams. Call Run to serve.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	logOut := opts.Log
	if logOut == nil {
		logOut = os.Stderr
	}
	drv := opts.Driver
	drv.Cache = nil
	drv.Progress = nil
	drv.Timer = nil
	return &Server{
		in:            bufio.NewReader(in),
		out:           bufio.NewWriter(out),
		log:           logOut,
		docs:          make(map[string]*document),
		timers:        make(map[string]*time.Timer),
		published:     make(map[string]bool),
		opts:          drv,
		implicitHints: true,
		debounce:      debounce,
		baseCtx:       context.Background(),
	}
}

// Run serves LSP requests until exit or end of input.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	defer s.stopTimers()
	for {
		payload, err := readMessage(s.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logf("dropping malformed message: %v", err)
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.handleMessage(&msg); err != nil {
			if errors.Is(err, ErrExit) || errors.Is(err, ErrExitWithoutShutdown) {
				return err
			}
			s.logf("%s: %v", msg.Method, err)
		}
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		s.mu.Lock()
		requested := s.shutdownRequested
		s.mu.Unlock()
		if requested {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "workspace/didChangeConfiguration":
		return s.handleDidChangeConfiguration(msg)
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didSave":
		return s.handleDidSave(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "textDocument/codeAction":
		return s.handleCodeAction(msg)
	case "textDocument/inlayHint":
		return s.handleInlayHint(msg)
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, codeMethodNotFound, "method not found")
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params initializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	s.applySettings(params.InitializationOptions)

	result := initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync: textDocumentSyncOptions{
				OpenClose: true,
				Change:    2, // incremental
				Save:      saveOptions{IncludeText: true},
			},
			HoverProvider:      true,
			CodeActionProvider: &codeActionOptions{CodeActionKinds: []string{quickFixKind}},
			InlayHintProvider:  true,
		},
		ServerInfo: serverInfo{Name: "arialint", Version: version.Current().Version},
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	s.mu.Unlock()
	s.stopTimers()
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params didOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	if uri == "" {
		return nil
	}
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = params.TextDocument.Text
	doc.version = params.TextDocument.Version
	doc.seq++
	s.mu.Unlock()
	s.scheduleDiagnostics(uri)
	return nil
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params didChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil {
		s.mu.Unlock()
		return fmt.Errorf("didChange for unopened document %s", uri)
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	doc.seq++
	s.mu.Unlock()
	s.scheduleDiagnostics(uri)
	return nil
}

func (s *Server) handleDidSave(msg *rpcMessage) error {
	var params didSaveTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	s.mu.Lock()
	doc := s.docs[uri]
	if doc == nil || params.Text == nil || *params.Text == doc.text {
		s.mu.Unlock()
		return nil
	}
	doc.text = *params.Text
	doc.seq++
	s.mu.Unlock()
	s.scheduleDiagnostics(uri)
	return nil
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params didCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	uri := canonicalURI(params.TextDocument.URI)
	s.mu.Lock()
	delete(s.docs, uri)
	if t := s.timers[uri]; t != nil {
		t.Stop()
		delete(s.timers, uri)
	}
	hadDiagnostics := s.published[uri]
	delete(s.published, uri)
	s.mu.Unlock()
	if hadDiagnostics {
		return s.sendPublish(uri, nil, nil)
	}
	return nil
}

// snapshot loads the current text of uri into a fresh file set.
func (s *Server) snapshot(uri string) (*source.File, bool) {
	uri = canonicalURI(uri)
	s.mu.Lock()
	doc := s.docs[uri]
	var text string
	if doc != nil {
		text = doc.text
	}
	s.mu.Unlock()
	if doc == nil {
		return nil, false
	}
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(displayName(uri), []byte(text))), true
}

func (s *Server) stopTimers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uri, t := range s.timers {
		t.Stop()
		delete(s.timers, uri)
	}
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	return s.send(msg)
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	msg := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": rpcError{
			Code:    code,
			Message: message,
		},
	}
	return s.send(msg)
}

func (s *Server) sendPublish(uri string, version *int, list []lspDiagnostic) error {
	if list == nil {
		list = []lspDiagnostic{}
	}
	msg := map[string]any{
		"jsonrpc": "2.0",
		"method":  "textDocument/publishDiagnostics",
		"params": publishDiagnosticsParams{
			URI:         uri,
			Version:     version,
			Diagnostics: list,
		},
	}
	return s.send(msg)
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	return s.out.Flush()
}

func (s *Server) logf(format string, args ...any) {
	fmt.Fprintf(s.log, "lsp: "+format+"\n", args...)
}
