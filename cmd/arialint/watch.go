package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"arialint/internal/driver"
	"arialint/internal/watcher"
)

// watchTarget re-runs the diagnosis of target after every batch of changes
// until the process is interrupted.
func watchTarget(cmd *cobra.Command, target string, opts driver.Options, render diagRender) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	accept := func(path string) bool {
		return driver.Selects(root, path, opts.Include, opts.Exclude)
	}
	w, err := watcher.New(watcher.DefaultDebounce, accept)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(target); err != nil {
		return fmt.Errorf("failed to watch %s: %w", target, err)
	}
	w.Start()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if !render.quiet {
		fmt.Fprintf(errOut, "watching %s (ctrl+c to stop)\n", target)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors():
			fmt.Fprintf(errOut, "watch: %v\n", err)
		case batch, ok := <-w.Batches():
			if !ok {
				return nil
			}
			start := time.Now()
			result, err := driver.Diagnose(ctx, target, nil, opts)
			if err != nil {
				fmt.Fprintf(errOut, "diagnosis failed: %v\n", err)
				continue
			}
			if !render.quiet {
				fmt.Fprintf(errOut, "\n%d changed, rechecked in %.1f ms\n", len(batch), toMillis(time.Since(start)))
			}
			if _, err := renderDiagnostics(out, result, render); err != nil {
				return err
			}
		}
	}
}
