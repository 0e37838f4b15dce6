// Package trace provides lightweight tracing for arialint runs.
//
// Spans mark driver runs, per-file analysis and individual detector / autofix
// passes, which helps to see where time goes on large directories.
//
// # Usage
//
//	arialint diag --trace=- --trace-level=detail ./site
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: failure points only
//   - LevelPhase: driver and per-file spans
//   - LevelDetail: plus detector and autofix passes
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeFile, "file:index.html", parentID)
//	defer span.End("")
package trace
