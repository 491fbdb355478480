package watcher

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.trai.ch/livetree/internal/core/domain"
	"go.trai.ch/livetree/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that are never watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
}

const eventChannelBuffer = 16

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	root      string
	events    chan domain.WatchEvent
	done      chan struct{}
	exited    chan struct{}
	doneOnce  sync.Once

	emitMu sync.Mutex
	closed bool

	// onPanic is deferred directly in every goroutine the watcher runs code on.
	onPanic func()
	stat    func(string) (os.FileInfo, error)
}

// NewWatcher creates a new, idle file system watcher.
func NewWatcher() *Watcher {
	return &Watcher{
		done:    make(chan struct{}),
		onPanic: func() {},
		stat:    os.Stat,
	}
}

// SetPanicHandler installs handler to run, deferred, in the watcher's goroutines.
// handler must call recover itself. It must be set before Watch.
func (w *Watcher) SetPanicHandler(handler func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if handler == nil {
		handler = func() {}
	}
	w.onPanic = handler
}

// Watch begins watching root recursively.
func (w *Watcher) Watch(ctx context.Context, root string, debounce time.Duration) (<-chan domain.WatchEvent, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher != nil {
		return nil, domain.ErrWatcherAlreadyStarted
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	if err := fsWatcher.Add(root); err != nil {
		_ = fsWatcher.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "path", root)
	}
	for dir := range watchRecursively(root) {
		if dir != root {
			// Subdirectories that vanish or deny access are not fatal.
			_ = fsWatcher.Add(dir)
		}
	}

	w.fsWatcher = fsWatcher
	w.root = root
	w.events = make(chan domain.WatchEvent, eventChannelBuffer)
	w.exited = make(chan struct{})
	w.debouncer = NewDebouncer(debounce, w.onBatch)

	go w.processEvents(ctx)

	return w.events, nil
}

// Close stops the watcher and releases all resources.
// The event channel is closed once the processing goroutine has exited.
func (w *Watcher) Close() error {
	w.stop()

	w.mu.Lock()
	fsWatcher, exited := w.fsWatcher, w.exited
	w.mu.Unlock()

	if fsWatcher == nil {
		return nil
	}
	err := fsWatcher.Close()
	<-exited
	return err
}

func (w *Watcher) stop() {
	w.doneOnce.Do(func() { close(w.done) })
}

// processEvents feeds raw fsnotify events into the debouncer until the watcher stops.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.exited)
	defer w.finish()
	defer w.onPanic()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			w.debouncer.Add(event.Name)

			// New directories are not covered by existing watches.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !shouldSkip(info.Name()) {
					for dir := range watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.emit(domain.WatchFailed(err.Error()))
		}
	}
}

// finish stops the debouncer and closes the event channel exactly once.
func (w *Watcher) finish() {
	w.stop()
	w.debouncer.Stop()

	w.emitMu.Lock()
	defer w.emitMu.Unlock()
	w.closed = true
	close(w.events)
}

// onBatch classifies a debounced batch by re-checking the root.
func (w *Watcher) onBatch(paths []string) {
	defer w.onPanic()

	_, err := w.stat(w.root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		w.emit(domain.RootDeleted())
	case err != nil:
		w.emit(domain.WatchFailed(err.Error()))
	default:
		w.emit(domain.Changed(paths))
	}
}

func (w *Watcher) emit(event domain.WatchEvent) {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- event:
	case <-w.done:
	}
}

// watchRecursively walks the directory tree and yields all directories.
func watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Continue walking even if there's an error accessing a directory.
				return nil //nolint:nilerr // unreadable directories are skipped
			}
			if d.IsDir() {
				if path != root && shouldSkip(d.Name()) {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// shouldSkip returns true if the directory should not be watched.
func shouldSkip(name string) bool {
	return shouldSkipDirectories[name]
}
