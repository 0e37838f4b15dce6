package driver

import (
	"context"
	"errors"
	"io"
	"strconv"

	"arialint/internal/fix"
	"arialint/internal/source"
	"arialint/internal/trace"
)

// FixResult is the fixer output for one file.
type FixResult struct {
	FileSet *source.FileSet
	File    *source.File
	Result  fix.Result
	// Idempotent is false when a second run would still change the text.
	Idempotent bool
	Written    bool
}

// FixOptions select what Fix does with the result.
type FixOptions struct {
	// Write stores the fixed text back into the file.
	Write bool
}

// Fix runs the fixer on path ("-" for stdin) and optionally writes the
// result back. A write request with nothing to change is not an error.
func Fix(ctx context.Context, path string, stdin io.Reader, opts Options, fo FixOptions) (*FixResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "fix", trace.CurrentSpan(ctx).SpanID).WithExtra("path", path)
	defer span.End("")

	loadIdx := opts.begin("load_file")
	fs, file, err := loadTarget(path, stdin)
	opts.end(loadIdx, "")
	if err != nil {
		trace.Error(tracer, "fix:load", err, span.ID())
		return nil, err
	}

	emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusWorking})

	fixOpts := opts.Fix
	fixOpts.Tracer = tracer
	fixOpts.ParentSpan = span.ID()

	fixIdx := opts.begin("fix")
	res, idempotent := fix.Verify(file.Content, fixOpts)
	opts.end(fixIdx, "changes="+strconv.Itoa(len(res.Changes)))
	span.WithExtra("changes", strconv.Itoa(len(res.Changes)))

	out := &FixResult{FileSet: fs, File: file, Result: res, Idempotent: idempotent}
	if fo.Write {
		switch err := fix.WriteFile(file, res); {
		case err == nil:
			out.Written = true
		case errors.Is(err, fix.ErrNoChanges):
		default:
			emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusError, Err: err})
			return out, err
		}
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageFix, Status: StatusDone})
	return out, nil
}
