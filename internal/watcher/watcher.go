// Package watcher re-runs diagnostics when watched snippets change.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last write before a batch
// is delivered.
const DefaultDebounce = 100 * time.Millisecond

// Watcher groups file system writes into batches of changed paths.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	// accept filters files inside watched directories.
	accept func(path string) bool

	mu      sync.Mutex
	files   map[string]bool // single-file targets
	dirs    map[string]bool
	pending map[string]struct{}
	timer   *time.Timer

	batches chan []string
	errors  chan error
	sendMu  sync.RWMutex
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a watcher. accept may be nil to take every file.
func New(debounce time.Duration, accept func(path string) bool) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if accept == nil {
		accept = func(string) bool { return true }
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		debounce:  debounce,
		accept:    accept,
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
		pending:   make(map[string]struct{}),
		batches:   make(chan []string, 16),
		errors:    make(chan error, 10),
		done:      make(chan struct{}),
	}, nil
}

// Batches delivers sorted, de-duplicated changed paths.
func (w *Watcher) Batches() <-chan []string {
	return w.batches
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Add watches a file (through its directory) or a directory tree.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		w.mu.Lock()
		w.files[absPath] = true
		w.mu.Unlock()
		return w.fsWatcher.Add(filepath.Dir(absPath))
	}

	return filepath.WalkDir(absPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.addDir(p)
	})
}

func (w *Watcher) addDir(dir string) error {
	w.mu.Lock()
	w.dirs[dir] = true
	w.mu.Unlock()
	return w.fsWatcher.Add(dir)
}

// Start begins the event loop.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.eventLoop()
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		err = w.fsWatcher.Close()

		// pending flushes see done and return before the channels close
		w.sendMu.Lock()
		w.closed = true
		close(w.batches)
		close(w.errors)
		w.sendMu.Unlock()
	})
	return err
}

func (w *Watcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	// Only writes, creates and renames (editors save via rename)
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		// новый подкаталог в наблюдаемом дереве
		if event.Op&fsnotify.Create != 0 && w.watchesDir(filepath.Dir(event.Name)) {
			if err := w.addDir(event.Name); err != nil {
				w.sendError(err)
			}
		}
		return
	}
	if !w.wants(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[event.Name] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) watchesDir(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dirs[dir]
}

func (w *Watcher) wants(path string) bool {
	w.mu.Lock()
	file := w.files[path]
	dir := w.dirs[filepath.Dir(path)]
	w.mu.Unlock()
	return file || (dir && w.accept(path))
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	batch := make([]string, 0, len(w.pending))
	for p := range w.pending {
		batch = append(batch, p)
	}
	clear(w.pending)
	w.mu.Unlock()

	slices.Sort(batch)
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return
	}
	select {
	case <-w.done:
	case w.batches <- batch:
	}
}

func (w *Watcher) sendError(err error) {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}
