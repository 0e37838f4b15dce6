// Package driver runs the detector and the fixer over files, stdin and
// directories, with an optional on-disk result cache.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"arialint/internal/diag"
	"arialint/internal/smell"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// StdinName is the display name used for snippets read from stdin.
const StdinName = "<stdin>"

// FileResult is the detector output for one file.
type FileResult struct {
	Path        string
	FileID      source.FileID
	Diagnostics []diag.Diagnostic
	Cached      bool
	// Failed is set when the file could not be read; Diagnostics then holds
	// a single IO9001 entry.
	Failed bool
}

// DiagnoseResult collects the per-file results of one run in input order.
type DiagnoseResult struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Diagnostics flattens all files' diagnostics, keeping file order.
func (r *DiagnoseResult) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0)
	if r == nil {
		return out
	}
	for _, f := range r.Files {
		out = append(out, f.Diagnostics...)
	}
	return out
}

// HasErrors reports whether any file produced an error-severity diagnostic.
func (r *DiagnoseResult) HasErrors() bool {
	for _, d := range r.Diagnostics() {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// Diagnose dispatches on target: "-" reads stdin, a directory is analysed in
// parallel, anything else is a single file.
func Diagnose(ctx context.Context, target string, stdin io.Reader, opts Options) (*DiagnoseResult, error) {
	if target == "-" {
		return DiagnoseReader(ctx, StdinName, stdin, opts)
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", target, err)
	}
	if info.IsDir() {
		return DiagnoseDir(ctx, target, opts)
	}
	return DiagnoseFile(ctx, target, opts)
}

// DiagnoseFile analyses one file on disk.
func DiagnoseFile(ctx context.Context, path string, opts Options) (*DiagnoseResult, error) {
	loadIdx := opts.begin("load_file")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	opts.end(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	res := analyzeFile(ctx, fs.Get(fileID), opts)
	return &DiagnoseResult{FileSet: fs, Files: []FileResult{res}}, nil
}

// DiagnoseReader analyses a snippet read from r under the display name name.
func DiagnoseReader(ctx context.Context, name string, r io.Reader, opts Options) (*DiagnoseResult, error) {
	loadIdx := opts.begin("load_file")
	content, err := io.ReadAll(r)
	opts.end(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	fs := source.NewFileSet()
	fileID := fs.AddNormalized(name, content, source.FileVirtual)
	res := analyzeFile(ctx, fs.Get(fileID), opts)
	return &DiagnoseResult{FileSet: fs, Files: []FileResult{res}}, nil
}

// DiagnoseSnippet analyses an in-memory snippet; used by the MCP server and
// the watcher tests.
func DiagnoseSnippet(ctx context.Context, name, snippet string, opts Options) *DiagnoseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(snippet))
	res := analyzeFile(ctx, fs.Get(fileID), opts)
	return &DiagnoseResult{FileSet: fs, Files: []FileResult{res}}
}

// analyzeFile runs the detector on one loaded file, consulting the cache.
func analyzeFile(ctx context.Context, file *source.File, opts Options) FileResult {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	span := trace.Begin(tracer, trace.ScopeFile, "file", parent).WithExtra("path", file.Path)

	started := time.Now()
	emit(opts.Progress, Event{File: file.Path, Stage: StageDetect, Status: StatusWorking})

	res := FileResult{Path: file.Path, FileID: file.ID}
	key := cacheKey(file, opts.MaxDiagnostics, opts.Smell)
	if opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			trace.Error(tracer, "cache:get", err, span.ID())
		}
		if ok {
			if diags, hit := fromPayload(file, &payload); hit {
				res.Diagnostics = diags
				res.Cached = true
			}
		}
	}

	if !res.Cached {
		smellOpts := opts.Smell
		smellOpts.Tracer = tracer
		smellOpts.ParentSpan = span.ID()

		detectStart := time.Now()
		bag := diag.NewBag(opts.MaxDiagnostics)
		for _, d := range smell.Detect(file, smellOpts) {
			if !bag.Add(d) {
				break
			}
		}
		res.Diagnostics = bag.Items()
		if opts.Timer != nil {
			opts.Timer.Add("detect", time.Since(detectStart))
		}

		if opts.Cache != nil {
			if err := opts.Cache.Put(key, toPayload(file, res.Diagnostics)); err != nil {
				trace.Error(tracer, "cache:put", err, span.ID())
			}
		}
	}

	elapsed := time.Since(started)
	span.WithExtra("diagnostics", strconv.Itoa(len(res.Diagnostics))).
		WithExtra("cached", strconv.FormatBool(res.Cached)).
		End("")
	emit(opts.Progress, Event{
		File:        file.Path,
		Stage:       StageDetect,
		Status:      StatusDone,
		Elapsed:     elapsed,
		Diagnostics: len(res.Diagnostics),
		Cached:      res.Cached,
	})
	return res
}

// ioFailure builds the diagnostic reported for a file that could not be read.
func ioFailure(fs *source.FileSet, path string, err error) (source.FileID, diag.Diagnostic) {
	fileID := fs.Add(path, nil, source.FileVirtual)
	d := diag.NewFor(diag.IOReadFailed, source.Span{File: fileID}, "failed to load file: "+err.Error()).
		WithSubject(diag.Subject{Value: path})
	return fileID, d
}
