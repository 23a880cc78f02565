package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/modfind/internal/adapters/fs"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	walker    *fs.Walker
	debouncer *Debouncer
	logger    ports.Logger

	changes  chan []string
	done     chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// NewWatcher creates a file system watcher that batches events within window.
func NewWatcher(window time.Duration, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	w := &Watcher{
		fsWatcher: fsWatcher,
		walker:    fs.NewWalker(nil),
		logger:    logger,
		changes:   make(chan []string),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching every root recursively, skipping version control
// directories. Roots that are not directories are skipped.
func (w *Watcher) Start(ctx context.Context, roots []string) error {
	for _, root := range roots {
		for dir := range w.walker.WalkDirs(root) {
			if err := w.fsWatcher.Add(dir); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
			}
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopErr = w.fsWatcher.Close()
	})
	return w.stopErr
}

// Changes returns an iterator of debounced, sorted batches of changed paths.
func (w *Watcher) Changes() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for {
			select {
			case <-w.done:
				return
			case paths := <-w.changes:
				if !yield(paths) {
					return
				}
			}
		}
	}
}

func (w *Watcher) emit(paths []string) {
	select {
	case w.changes <- paths:
	case <-w.done:
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer func() { _ = w.Stop() }()

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
			if !relevant(event) {
				continue
			}
			w.debouncer.Add(event.Name)

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.walker.Ignored(info.Name()) {
					for dir := range w.walker.WalkDirs(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// relevant reports whether an event can change a resolution outcome.
// Pure permission changes cannot.
func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
