package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"arialint/internal/diagfmt"
	"arialint/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file|->",
	Short: "Apply conservative ARIA fixes",
	Long: `Apply the safe automatic fixes to a snippet and print the result.
With --write the file is updated in place; with --check nothing is printed
except the change log, and the command fails when a fix would apply.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().String("format", "text", "output format (text|json|html)")
	fixCmd.Flags().Bool("write", false, "write the fixed text back to the file")
	fixCmd.Flags().Bool("check", false, "exit with status 1 when a fix would apply")
	fixCmd.Flags().Bool("track-depth", false, "find tablist closers by nesting depth instead of the first close tag")
	fixCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runFix(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	if write && check {
		return fmt.Errorf("write and check flags cannot be used together")
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
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
	if cmd.Flags().Changed("track-depth") {
		if opts.Fix.TrackDepth, err = cmd.Flags().GetBool("track-depth"); err != nil {
			return fmt.Errorf("failed to get track-depth flag: %w", err)
		}
	}

	result, err := driver.Fix(cmd.Context(), target, cmd.InOrStdin(), opts, driver.FixOptions{Write: write})
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch format {
	case "text":
		err = renderFixText(out, errOut, result, write || check, quiet, colored)
	case "json":
		pathMode := diagfmt.PathModeAuto
		if fullPath {
			pathMode = diagfmt.PathModeAbsolute
		}
		err = diagfmt.WriteJSON(out, diagfmt.BuildFixOutput(result.Result, result.FileSet, result.File.ID, pathMode))
	case "html":
		err = diagfmt.ChangesHTML(out, result.Result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to format fix result: %w", err)
	}

	if !result.Idempotent && !quiet {
		fmt.Fprintln(errOut, "note: a second fix run would still change the text")
	}
	if opts.Timer != nil && !quiet {
		if err := printTimings(errOut, opts.Timer); err != nil {
			return err
		}
	}
	if check && result.Result.Changed() {
		return errProblemsFound
	}
	return nil
}

// renderFixText prints the fixed text on stdout and the change log on
// stderr; logOnly drops the text.
func renderFixText(out, errOut io.Writer, result *driver.FixResult, logOnly, quiet, colored bool) error {
	if !logOnly {
		if _, err := io.WriteString(out, result.Result.Text); err != nil {
			return err
		}
	}
	if quiet {
		return nil
	}
	if err := diagfmt.Changes(errOut, result.Result, colored); err != nil {
		return err
	}
	if result.Written {
		_, err := fmt.Fprintf(errOut, "wrote %s\n", result.File.Path)
		return err
	}
	return nil
}
