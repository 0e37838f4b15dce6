// Package diag defines the diagnostic model shared by the detector, the driver
// and the renderers.
//
// # Purpose
//
//   - Provide deterministic, serialisable records that capture ARIA smells
//     found in a snippet.
//   - Offer light-weight utilities (Reporter, Bag, CapReporter) that let the
//     detector passes emit diagnostics without coupling to storage or output.
//
// # Scope
//
// Package diag does not perform any formatting beyond the one-line short form,
// no IO and no CLI integration. Rendering lives in internal/diagfmt; automatic
// corrections live in internal/fix and are not attached to diagnostics.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Info, Warning or Error. Every code has a default severity
//     (Code.DefaultSeverity); the detector reports with it.
//   - Code – numeric identifier grouped by thousands with a stable string
//     form: ROL (role semantics), INT (interaction), NAM (accessible name),
//     ATR (attribute validity), STR (structure), IO.
//   - Subject – tag, role, attribute and value the finding is about. Summaries
//     and renderers correlate diagnostics with attributes through Subject, not
//     by searching the message.
//   - Message – plain text; code-like fragments are wrapped in backticks so
//     the HTML renderer can turn them into <code> elements.
//   - Primary span – the tag or attribute the finding points at. Whole-snippet
//     findings point at the first tag that triggered them.
//   - Notes – optional secondary spans.
//
// # Emitting diagnostics
//
// Passes build diagnostics with ReportCode / NewReportBuilder and call Emit.
// The detector chains FilterReporter → CapReporter → BagReporter, so disabled
// codes never count towards a cap and caps are per code, per snippet.
package diag
