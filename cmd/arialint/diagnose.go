package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"arialint/internal/diag"
	"arialint/internal/diagfmt"
	"arialint/internal/driver"
)

// errProblemsFound makes the process exit with status 1 without printing
// anything beyond the already rendered diagnostics.
var errProblemsFound = errors.New("problems found")

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file|directory|->",
	Short: "Check markup snippets for ARIA smells",
	Long: `Check a snippet file, every matching file of a directory, or stdin ("-")
for ARIA smells. The command exits with status 1 when an error-level finding
is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|short|json|html)")
	diagCmd.Flags().Bool("no-warnings", false, "report errors only")
	diagCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	diagCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	diagCmd.Flags().Bool("clear-cache", false, "drop the result cache before running")
	diagCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	diagCmd.Flags().Bool("watch", false, "re-run when watched files change")
}

// diagRender holds everything the output step needs.
type diagRender struct {
	format           string
	colored          bool
	quiet            bool
	noWarnings       bool
	warningsAsErrors bool
	pathMode         diagfmt.PathMode
	withNotes        bool
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json", "html":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}
	if watch && target == "-" {
		return fmt.Errorf("--watch needs a file or directory, not stdin")
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colored, err := useColor(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	opts.Jobs = jobs
	if !cmd.Flags().Changed("cache") {
		useCache = cfg.Cache.Enabled
	}
	if opts.Cache, err = openCache(cfg, useCache, clearCache); err != nil {
		return err
	}

	render := diagRender{
		format:           format,
		colored:          colored,
		quiet:            quiet,
		noWarnings:       noWarnings,
		warningsAsErrors: warningsAsErrors,
		pathMode:         diagfmt.PathModeAuto,
		withNotes:        withNotes,
	}
	if fullPath {
		render.pathMode = diagfmt.PathModeAbsolute
	}

	// Progress view only makes sense for directories and the pretty format.
	useTUI := false
	if info, statErr := os.Stat(target); statErr == nil && info.IsDir() && format == "pretty" && !quiet {
		useTUI = shouldUseTUI(mode)
	}

	var result *driver.DiagnoseResult
	if useTUI {
		result, err = runDiagnoseWithUI(cmd.Context(), "arialint diag", target, opts)
	} else {
		result, err = driver.Diagnose(cmd.Context(), target, cmd.InOrStdin(), opts)
	}
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	failed, err := renderDiagnostics(out, result, render)
	if err != nil {
		return err
	}
	if opts.Timer != nil && !quiet {
		if err := printTimings(cmd.ErrOrStderr(), opts.Timer); err != nil {
			return err
		}
	}

	if watch {
		return watchTarget(cmd, target, opts, render)
	}
	if failed {
		return errProblemsFound
	}
	return nil
}

// renderDiagnostics writes result in the selected format and reports
// whether the run should fail.
func renderDiagnostics(out io.Writer, result *driver.DiagnoseResult, r diagRender) (bool, error) {
	diags := result.Diagnostics()
	if r.noWarnings {
		kept := diags[:0:0]
		for _, d := range diags {
			if d.Severity >= diag.SevError {
				kept = append(kept, d)
			}
		}
		diags = kept
	}

	counts := diagfmt.CountOf(diags)
	failed := counts.Errors > 0 || (r.warningsAsErrors && counts.Warnings > 0)

	switch r.format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:     r.colored,
			Context:   1,
			PathMode:  r.pathMode,
			ShowNotes: r.withNotes,
			ShowTitle: true,
		}
		if err := diagfmt.Pretty(out, diags, result.FileSet, prettyOpts); err != nil {
			return failed, fmt.Errorf("failed to format diagnostics: %w", err)
		}
		if !r.quiet {
			if err := diagfmt.Footer(out, counts, len(result.Files), r.colored); err != nil {
				return failed, err
			}
		}
	case "short":
		if err := diagfmt.Short(out, diags, result.FileSet); err != nil {
			return failed, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         r.pathMode,
			IncludeNotes:     r.withNotes,
		}
		if err := diagfmt.JSON(out, diags, result.FileSet, jsonOpts); err != nil {
			return failed, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "html":
		if err := diagfmt.HTML(out, diags, blankInput(result)); err != nil {
			return failed, fmt.Errorf("failed to format diagnostics: %w", err)
		}
	default:
		return failed, fmt.Errorf("unknown format: %s", r.format)
	}
	return failed, nil
}

// blankInput is true for a single snippet with nothing but whitespace.
func blankInput(result *driver.DiagnoseResult) bool {
	if len(result.Files) != 1 || result.Files[0].Failed {
		return false
	}
	file := result.FileSet.Get(result.Files[0].FileID)
	return file != nil && strings.TrimSpace(string(file.Content)) == ""
}
