package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arialint/internal/config"
	"arialint/internal/driver"
	"arialint/internal/observ"
)

// loadConfig discovers arialint.toml from the working directory unless
// --config names a file explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return config.Discover(explicit, wd)
}

// driverOptions builds driver options from the configuration; persistent
// flags given on the command line take precedence.
func driverOptions(cmd *cobra.Command, cfg *config.Config) (driver.Options, error) {
	opts := driver.OptionsFromConfig(cfg)

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("max-diagnostics") {
		maxDiagnostics, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		opts.MaxDiagnostics = maxDiagnostics
	}

	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if showTimings {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

// openCache opens the result cache when it is enabled in the config or by
// flag; clear drops existing entries first.
func openCache(cfg *config.Config, enabled, clear bool) (*driver.DiskCache, error) {
	if !enabled && !clear {
		return nil, nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	cache, err := driver.OpenDiskCache(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if clear {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if !enabled {
		return nil, nil
	}
	return cache, nil
}
