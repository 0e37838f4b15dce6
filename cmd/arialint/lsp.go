package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"arialint/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Run the arialint language server over stdio",
	Long: `Serve diagnostics, role hovers, implicit-role inlay hints and an autofix
quick fix to editors over the Language Server Protocol. Client settings live
under the "arialint" key (minSeverity, trackDepth, inlayHints.implicitRoles).`,
	Args: cobra.NoArgs,
	RunE: runLSP,
}

func init() {
	lspCmd.Flags().Duration("debounce", 200*time.Millisecond, "quiet period after an edit before re-checking")
}

func runLSP(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := driverOptions(cmd, cfg)
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Debounce: debounce,
		Driver:   opts,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return errors.New("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
