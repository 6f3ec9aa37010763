package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchEventBuffer = 64

// ChangeKind is the type of documentation change.
type ChangeKind string

const (
	ChangeCreated  ChangeKind = "created"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// Change is a debounced documentation file change.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher watches documentation paths and emits debounced change
// events so a review can be re-run when its inputs change. Changes
// that do not alter file content are suppressed by hash comparison.
type Watcher struct {
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	exts     map[string]bool

	mu      sync.Mutex
	pending map[string]fsnotify.Op
	hashes  map[string]string

	changes chan Change
}

// NewWatcher creates a watcher with the given debounce interval. A
// non-positive debounce defaults to 500ms. exts limits watched files
// by extension; empty watches every file.
func NewWatcher(debounce time.Duration, exts []string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extSet[strings.ToLower(ext)] = true
	}

	return &Watcher{
		fsw:      fsw,
		logger:   logger,
		debounce: debounce,
		exts:     extSet,
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
		changes:  make(chan Change, watchEventBuffer),
	}, nil
}

// Changes returns the channel of debounced change events. It is closed
// when the watcher stops.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Add registers a documentation path. Files are watched through their
// parent directory; directories are watched recursively.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if content, err := os.ReadFile(path); err == nil {
			w.setHash(path, contentHash(content))
		}
		return w.fsw.Add(filepath.Dir(path))
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if base := filepath.Base(p); strings.HasPrefix(base, ".") && p != path {
			return filepath.SkipDir
		}
		return w.fsw.Add(p)
	})
}

// Start runs the event loop until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.changes)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.record(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("documentation watch error", "error", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) record(event fsnotify.Event) {
	ext := strings.ToLower(filepath.Ext(event.Name))
	if len(w.exts) > 0 && !w.exts[ext] {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] |= event.Op
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	batch := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.mu.Unlock()

	for path, op := range batch {
		w.emit(path, op)
	}
}

func (w *Watcher) emit(path string, op fsnotify.Op) {
	if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
		w.dropHash(path)
		w.send(Change{Path: path, Kind: ChangeRemoved})
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.dropHash(path)
			w.send(Change{Path: path, Kind: ChangeRemoved})
		}
		return
	}

	hash := contentHash(content)
	old, known := w.getHash(path)
	if known && old == hash {
		return
	}
	w.setHash(path, hash)

	kind := ChangeModified
	if !known {
		kind = ChangeCreated
	}
	w.send(Change{Path: path, Kind: kind})
}

func (w *Watcher) send(change Change) {
	select {
	case w.changes <- change:
	default:
		w.logger.Warn("change channel full, dropping event", "path", change.Path)
	}
}

func (w *Watcher) setHash(path, hash string) {
	w.mu.Lock()
	w.hashes[path] = hash
	w.mu.Unlock()
}

func (w *Watcher) getHash(path string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	h, ok := w.hashes[path]
	return h, ok
}

func (w *Watcher) dropHash(path string) {
	w.mu.Lock()
	delete(w.hashes, path)
	w.mu.Unlock()
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
