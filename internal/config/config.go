// Package config loads arialint.toml (or an explicit .yaml/.json file) and
// turns it into detector, fixer and driver options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"arialint/internal/diag"
	"arialint/internal/fix"
	"arialint/internal/smell"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "arialint.toml"

// Config is the full configuration. Zero values mean "use the default".
type Config struct {
	Diag  DiagConfig  `toml:"diag" json:"diag" yaml:"diag"`
	Fix   FixConfig   `toml:"fix" json:"fix" yaml:"fix"`
	Files FilesConfig `toml:"files" json:"files" yaml:"files"`
	Cache CacheConfig `toml:"cache" json:"cache" yaml:"cache"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" json:"-" yaml:"-"`
}

type DiagConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics" json:"max_diagnostics" yaml:"max_diagnostics"`
	MinSeverity    string `toml:"min_severity" json:"min_severity" yaml:"min_severity"`
	// Disabled lists codes such as "ROL1001".
	Disabled []string `toml:"disabled" json:"disabled" yaml:"disabled"`
	// Caps overrides per-code caps, e.g. {INT2001 = 3}; 0 means unlimited.
	Caps map[string]int `toml:"caps" json:"caps" yaml:"caps"`
}

type FixConfig struct {
	TrackDepth bool `toml:"track_depth" json:"track_depth" yaml:"track_depth"`
}

// FilesConfig selects files in directory mode with doublestar globs
// relative to the scanned directory.
type FilesConfig struct {
	Include []string `toml:"include" json:"include" yaml:"include"`
	Exclude []string `toml:"exclude" json:"exclude" yaml:"exclude"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled" yaml:"enabled"`
	Dir     string `toml:"dir" json:"dir" yaml:"dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Diag: DiagConfig{
			MaxDiagnostics: 100,
			MinSeverity:    "info",
			Disabled:       []string{},
			Caps:           map[string]int{},
		},
		Files: FilesConfig{
			Include: []string{"**/*.html", "**/*.htm"},
			Exclude: []string{"**/node_modules/**", "**/.git/**"},
		},
	}
}

// Severity returns the configured minimum severity; invalid values fall
// back to info (Validate reports them).
func (c *Config) Severity() diag.Severity {
	sev, err := diag.ParseSeverity(c.Diag.MinSeverity)
	if err != nil {
		return diag.SevInfo
	}
	return sev
}

// DisabledCodes returns the disabled codes that parse.
func (c *Config) DisabledCodes() map[diag.Code]bool {
	out := make(map[diag.Code]bool, len(c.Diag.Disabled))
	for _, id := range c.Diag.Disabled {
		if code, err := diag.ParseCode(id); err == nil {
			out[code] = true
		}
	}
	return out
}

// CapOverrides returns the cap overrides whose codes parse.
func (c *Config) CapOverrides() map[diag.Code]int {
	out := make(map[diag.Code]int, len(c.Diag.Caps))
	for id, n := range c.Diag.Caps {
		if code, err := diag.ParseCode(id); err == nil {
			out[code] = n
		}
	}
	return out
}

// SmellOptions converts the [diag] section into detector options.
func (c *Config) SmellOptions() smell.Options {
	return smell.Options{
		Caps:        c.CapOverrides(),
		Disabled:    c.DisabledCodes(),
		MinSeverity: c.Severity(),
	}
}

// FixOptions converts the [fix] section into fixer options.
func (c *Config) FixOptions() fix.Options {
	return fix.Options{TrackDepth: c.Fix.TrackDepth}
}

// CacheDir resolves the cache directory, defaulting to the user cache dir.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		if filepath.IsAbs(c.Cache.Dir) || c.Path == "" {
			return c.Cache.Dir, nil
		}
		return filepath.Join(filepath.Dir(c.Path), c.Cache.Dir), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "arialint"), nil
}
