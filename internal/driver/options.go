package driver

import (
	"arialint/internal/config"
	"arialint/internal/fix"
	"arialint/internal/observ"
	"arialint/internal/smell"
)

// Options configure a driver run. The tracer travels in the context.
type Options struct {
	// MaxDiagnostics limits diagnostics per file; 0 means no limit.
	MaxDiagnostics int
	Smell          smell.Options
	Fix            fix.Options

	// Jobs bounds directory workers; <= 0 uses GOMAXPROCS.
	Jobs    int
	Include []string
	Exclude []string

	Cache    *DiskCache
	Timer    *observ.Timer
	Progress ProgressSink
}

// OptionsFromConfig maps a loaded configuration onto driver options.
// The cache is opened separately (see OpenDiskCache).
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxDiagnostics: cfg.Diag.MaxDiagnostics,
		Smell:          cfg.SmellOptions(),
		Fix:            cfg.FixOptions(),
		Include:        cfg.Files.Include,
		Exclude:        cfg.Files.Exclude,
	}
}

func (o Options) begin(name string) int {
	if o.Timer == nil {
		return -1
	}
	return o.Timer.Begin(name)
}

func (o Options) end(idx int, note string) {
	if o.Timer == nil || idx < 0 {
		return
	}
	o.Timer.End(idx, note)
}
