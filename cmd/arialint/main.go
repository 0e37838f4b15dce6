package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"arialint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "arialint",
	Short: "ARIA smell detector and conservative autofixer",
	Long: `arialint checks HTML, JSX and template snippets for ARIA misuse
(redundant or conflicting roles, missing states, unnamed controls, broken
containment) and applies a small set of safe fixes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		colored, err := useColor(cmd)
		if err != nil {
			return err
		}
		color.NoColor = !colored
		stopProfiles, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			stopProfiles()
			return err
		}
		traceCleanup = func() {
			cleanup()
			stopProfiles()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushTrace()
	},
}

var traceCleanup func()

func flushTrace() {
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error, including "errors found", exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(roleCmd)
	rootCmd.AddCommand(attrsCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: nearest arialint.toml)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	if err := rootCmd.Execute(); err != nil {
		flushTrace()
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color against the stdout terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
}
