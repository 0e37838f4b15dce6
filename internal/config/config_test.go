package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arialint/internal/diag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Diag.MaxDiagnostics)
	assert.Equal(t, diag.SevInfo, cfg.Severity())
	assert.False(t, cfg.Fix.TrackDepth)
	assert.Contains(t, cfg.Files.Include, "**/*.html")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, `
[diag]
max_diagnostics = 20
min_severity = "warning"
disabled = ["ROL1001"]

[diag.caps]
INT2001 = 0
NAM3004 = 2

[fix]
track_depth = true

[files]
include = ["src/**/*.html"]

[cache]
enabled = true
dir = ".cache"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 20, cfg.Diag.MaxDiagnostics)
	assert.Equal(t, diag.SevWarning, cfg.Severity())
	assert.True(t, cfg.DisabledCodes()[diag.RolRedundant])
	assert.Equal(t, map[diag.Code]int{diag.IntMouseOnly: 0, diag.NamButtonUnnamed: 2}, cfg.CapOverrides())
	assert.True(t, cfg.FixOptions().TrackDepth)
	assert.Equal(t, []string{"src/**/*.html"}, cfg.Files.Include)
	// exclude keeps its default
	assert.Equal(t, DefaultConfig().Files.Exclude, cfg.Files.Exclude)

	dirOut, err := cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".cache"), dirOut)

	opts := cfg.SmellOptions()
	assert.Equal(t, diag.SevWarning, opts.MinSeverity)
	assert.True(t, opts.Disabled[diag.RolRedundant])
}

func TestLoadYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yml := writeFile(t, dir, "arialint.yaml", "diag:\n  min_severity: error\nfix:\n  track_depth: true\n")
	js := writeFile(t, dir, "arialint.json", `{"diag": {"disabled": ["STR5001"], "caps": {"ROL1002": 3}}}`)

	cfg, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, diag.SevError, cfg.Severity())
	assert.True(t, cfg.Fix.TrackDepth)

	cfg, err = Load(js)
	require.NoError(t, err)
	assert.Equal(t, []string{"STR5001"}, cfg.Diag.Disabled)
	assert.Equal(t, 3, cfg.Diag.Caps["ROL1002"])
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "[diag]\nmax_diagnostic = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsSchemaTypes(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "[diag.caps]\nINT2001 = -1\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "diag.caps.INT2001")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "arialint.ini", "x=1")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Diag.Disabled = []string{"XYZ9999"}
	cfg.Diag.MinSeverity = "fatal"
	cfg.Files.Exclude = []string{"[unclosed"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"diag.disabled", "diag.min_severity", "files.exclude"}, fields)
}

func TestValidationErrorsString(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Equal(t, "config: a: bad; config: b: worse", errs.Error())
	assert.Empty(t, ValidationErrors{}.Error())
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, FileName, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, got)
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, "[fix]\ntrack_depth = true\n")

	cfg, err := Discover("", root)
	require.NoError(t, err)
	assert.True(t, cfg.Fix.TrackDepth)

	_, err = Discover(filepath.Join(root, "missing.toml"), root)
	assert.Error(t, err)
}
