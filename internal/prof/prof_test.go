package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPU:   filepath.Join(dir, "cpu.pprof"),
		Heap:  filepath.Join(dir, "heap.pprof"),
		Trace: filepath.Join(dir, "run.trace"),
	}
	if !cfg.Enabled() {
		t.Fatal("config with paths must be enabled")
	}
	s, err := Start(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{cfg.CPU, cfg.Heap, cfg.Trace} {
		info, err := os.Stat(p)
		if err != nil {
			t.Errorf("%s: %v", filepath.Base(p), err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(p))
		}
	}
}

func TestStartFailsCleanly(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	if _, err := Start(Config{CPU: filepath.Join(missing, "cpu.pprof")}); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	// CPU profiling must not be left running after a failed trace start
	cpu := filepath.Join(t.TempDir(), "cpu.pprof")
	if _, err := Start(Config{CPU: cpu, Trace: filepath.Join(missing, "run.trace")}); err == nil {
		t.Fatal("expected error for unwritable trace path")
	}
	s, err := Start(Config{CPU: cpu})
	if err != nil {
		t.Fatalf("cpu profile still active after failed start: %v", err)
	}
	_ = s.Stop()
	if (Config{}).Enabled() {
		t.Error("zero config must be disabled")
	}
}
