package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"arialint/internal/diag"
	"arialint/internal/observ"
	"arialint/internal/smell"
)

const (
	tabSnippet    = `<div role="tab">Tab 1</div>`
	buttonSnippet = `<button role="button">Go</button>`
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestListFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.html":                  "",
		"a.htm":                   "",
		"notes.txt":               "",
		"pages/index.html":        "",
		"node_modules/x/lib.html": "",
	})
	files, err := ListFiles(root, []string{"**/*.html", "**/*.htm"}, []string{"**/node_modules/**"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.htm", "b.html", "pages/index.html"}
	if diff := cmp.Diff(want, relPaths(t, root, files)); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}

	all, err := ListFiles(root, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("empty include should select all 5 files, got %d", len(all))
	}
}

func TestSelects(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "site")
	include := []string{"**/*.html"}
	exclude := []string{"**/vendor/**"}
	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "index.html"), true},
		{filepath.Join(root, "a", "b", "page.html"), true},
		{filepath.Join(root, "style.css"), false},
		{filepath.Join(root, "vendor", "lib.html"), false},
		{filepath.Join(string(filepath.Separator), "other", "x.html"), false},
	}
	for _, tt := range tests {
		if got := Selects(root, tt.path, include, exclude); got != tt.want {
			t.Errorf("Selects(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if !Selects(root, filepath.Join(root, "notes.txt"), nil, nil) {
		t.Error("empty include must select every file")
	}
}

func TestDiagnoseDirKeepsFileOrder(t *testing.T) {
	root := writeTree(t, map[string]string{
		"c.html": tabSnippet,
		"a.html": buttonSnippet,
		"b.html": "plain text",
	})
	res, err := DiagnoseDir(context.Background(), root, Options{Jobs: 3, Include: []string{"*.html"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Files))
	}
	got := make([][]diag.Code, 0, 3)
	for _, f := range res.Files {
		got = append(got, codes(f.Diagnostics))
	}
	want := [][]diag.Code{
		{diag.RolRedundant},
		{},
		{diag.AtrMissingRequired, diag.StrTabNoTablist},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("codes per file (-want +got):\n%s", diff)
	}
	if !res.HasErrors() {
		t.Error("ATR4001 is an error; HasErrors must be true")
	}
	if n := len(res.Diagnostics()); n != 3 {
		t.Errorf("flattened diagnostics = %d, want 3", n)
	}
}

func TestDiagnoseDirReportsUnreadableFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"ok.html": buttonSnippet})
	if err := os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken.html")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	res, err := DiagnoseDir(context.Background(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Files))
	}
	broken := res.Files[0]
	if !broken.Failed || len(broken.Diagnostics) != 1 || broken.Diagnostics[0].Code != diag.IOReadFailed {
		t.Fatalf("broken file result = %+v", broken)
	}
	if broken.Diagnostics[0].Severity != diag.SevError {
		t.Errorf("IO9001 severity = %v", broken.Diagnostics[0].Severity)
	}
	if f := res.FileSet.Get(broken.FileID); f == nil || !strings.HasSuffix(f.Path, "broken.html") {
		t.Errorf("IO diagnostic not attached to its file: %+v", f)
	}
	if codes(res.Files[1].Diagnostics)[0] != diag.RolRedundant {
		t.Errorf("second file codes = %v", codes(res.Files[1].Diagnostics))
	}
}

func TestDiagnoseEmptyDir(t *testing.T) {
	res, err := DiagnoseDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Files == nil || len(res.Files) != 0 {
		t.Errorf("Files = %#v, want empty non-nil", res.Files)
	}
}

func TestDiagnoseMaxDiagnostics(t *testing.T) {
	res := DiagnoseSnippet(context.Background(), "s.html", tabSnippet, Options{MaxDiagnostics: 1})
	if diff := cmp.Diff([]diag.Code{diag.AtrMissingRequired}, codes(res.Diagnostics())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiagnoseDispatch(t *testing.T) {
	root := writeTree(t, map[string]string{"one.html": buttonSnippet})

	res, err := Diagnose(context.Background(), "-", strings.NewReader(tabSnippet), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Files[0].Path != StdinName || len(res.Files[0].Diagnostics) != 2 {
		t.Errorf("stdin result = %+v", res.Files[0])
	}

	res, err = Diagnose(context.Background(), filepath.Join(root, "one.html"), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 1 || codes(res.Files[0].Diagnostics)[0] != diag.RolRedundant {
		t.Errorf("file result = %+v", res.Files)
	}

	if _, err := Diagnose(context.Background(), filepath.Join(root, "nope.html"), nil, Options{}); err == nil {
		t.Error("expected an error for a missing target")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	first := DiagnoseSnippet(context.Background(), "a.html", tabSnippet, opts)
	if first.Files[0].Cached {
		t.Fatal("first run must miss the cache")
	}
	second := DiagnoseSnippet(context.Background(), "a.html", tabSnippet, opts)
	if !second.Files[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if diff := cmp.Diff(first.Diagnostics(), second.Diagnostics(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("cached diagnostics differ (-fresh +cached):\n%s", diff)
	}

	// other options, other key
	third := DiagnoseSnippet(context.Background(), "a.html", tabSnippet, Options{
		Cache: cache,
		Smell: smell.Options{Disabled: map[diag.Code]bool{diag.StrTabNoTablist: true}},
	})
	if third.Files[0].Cached {
		t.Error("changed options must miss the cache")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	fourth := DiagnoseSnippet(context.Background(), "a.html", tabSnippet, opts)
	if fourth.Files[0].Cached {
		t.Error("DropAll must invalidate entries")
	}
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	var payload DiskPayload
	if ok, err := c.Get(CacheKey{}, &payload); ok || err != nil {
		t.Errorf("nil Get = %v, %v", ok, err)
	}
	if err := c.Put(CacheKey{}, &payload); err != nil {
		t.Errorf("nil Put = %v", err)
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestProgressEventsAndTimings(t *testing.T) {
	root := writeTree(t, map[string]string{"a.html": buttonSnippet, "b.html": tabSnippet})
	sink := &recordingSink{}
	timer := observ.NewTimer()
	if _, err := DiagnoseDir(context.Background(), root, Options{Progress: sink, Timer: timer}); err != nil {
		t.Fatal(err)
	}

	done := map[string]int{}
	queued := 0
	for _, ev := range sink.events {
		switch ev.Status {
		case StatusQueued:
			queued++
		case StatusDone:
			done[filepath.Base(ev.File)] = ev.Diagnostics
		}
	}
	if queued != 2 {
		t.Errorf("queued events = %d, want 2", queued)
	}
	if diff := cmp.Diff(map[string]int{"a.html": 1, "b.html": 2}, done); diff != "" {
		t.Errorf("done events (-want +got):\n%s", diff)
	}

	names := map[string]bool{}
	for _, p := range timer.Report().Phases {
		names[p.Name] = true
	}
	for _, want := range []string{"list_files", "load_files", "detect"} {
		if !names[want] {
			t.Errorf("missing timing phase %q in %v", want, names)
		}
	}
}

func TestFixWritesFile(t *testing.T) {
	root := writeTree(t, map[string]string{"a.html": `<span role="checkbox"/>`})
	path := filepath.Join(root, "a.html")

	res, err := Fix(context.Background(), path, nil, Options{}, FixOptions{Write: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Written || !res.Idempotent || len(res.Result.Changes) != 1 {
		t.Fatalf("fix result = %+v", res)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `<span role="checkbox" aria-checked="false"/>`; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}

	// nothing left to do: no error, no write
	res, err = Fix(context.Background(), path, nil, Options{}, FixOptions{Write: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Written || res.Result.Changed() {
		t.Errorf("second fix = %+v", res)
	}
}

func TestFixStdinCannotWrite(t *testing.T) {
	_, err := Fix(context.Background(), "-", strings.NewReader(`<span role="checkbox"/>`), Options{}, FixOptions{Write: true})
	if err == nil {
		t.Fatal("writing a stdin snippet must fail")
	}
}

func TestTokenize(t *testing.T) {
	res, err := Tokenize("-", strings.NewReader(`<nav><a href="/">x</a></nav>`))
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(res.Tags))
	for _, tag := range res.Tags {
		got = append(got, tag.Name)
	}
	if diff := cmp.Diff([]string{"nav", "a"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
