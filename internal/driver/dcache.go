package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"arialint/internal/diag"
	"arialint/internal/smell"
	"arialint/internal/source"
)

// Current schema version - increment when DiskPayload format or the rules change.
const diskCacheSchemaVersion uint16 = 1

// CacheKey identifies a detector result: file content plus everything that
// shapes the diagnostics.
type CacheKey [32]byte

// DiskCache хранит результаты детектора по хешу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached detector output for one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash [32]byte

	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is a diagnostic without its file id; spans are restored
// against the file that hit the cache.
type CachedDiagnostic struct {
	Severity diag.Severity
	Code     diag.Code
	Subject  diag.Subject
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

// OpenDiskCache initializes a disk cache rooted at dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		return nil, errors.New("cache dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не держать тысячи файлов в одном месте
	return filepath.Join(c.dir, "diag", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads and deserializes a payload from the disk cache. Payloads of
// another schema version count as a miss.
func (c *DiskCache) Get(key CacheKey, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// cacheKey mixes the content hash with the options that shape the output.
func cacheKey(file *source.File, maxDiagnostics int, opts smell.Options) CacheKey {
	h := sha256.New()
	fmt.Fprintf(h, "arialint/v%d\x00", diskCacheSchemaVersion)
	h.Write(file.Hash[:])
	fmt.Fprintf(h, "\x00max=%d\x00min=%d\x00", maxDiagnostics, opts.MinSeverity)

	disabled := make([]diag.Code, 0, len(opts.Disabled))
	for code, off := range opts.Disabled {
		if off {
			disabled = append(disabled, code)
		}
	}
	slices.Sort(disabled)
	for _, code := range disabled {
		fmt.Fprintf(h, "off=%d\x00", code)
	}

	caps := make([]diag.Code, 0, len(opts.Caps))
	for code := range opts.Caps {
		caps = append(caps, code)
	}
	slices.Sort(caps)
	for _, code := range caps {
		fmt.Fprintf(h, "cap=%d:%d\x00", code, opts.Caps[code])
	}

	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

func toPayload(file *source.File, diags []diag.Diagnostic) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: file.Hash,
		Diagnostics: make([]CachedDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		cd := CachedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Subject:  d.Subject,
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// fromPayload restores diagnostics with spans pointing into file.
func fromPayload(file *source.File, payload *DiskPayload) ([]diag.Diagnostic, bool) {
	if payload == nil || payload.Schema != diskCacheSchemaVersion || payload.ContentHash != file.Hash {
		return nil, false
	}
	out := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: cd.Severity,
			Code:     cd.Code,
			Subject:  cd.Subject,
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: file.ID, Start: n.Start, End: n.End}, Msg: n.Msg})
		}
		out = append(out, d)
	}
	return out, true
}
