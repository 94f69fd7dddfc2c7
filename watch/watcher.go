// Package watch re-runs a function whenever one of a set of files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must be quiet before the handler runs.
const DefaultDebounce = 100 * time.Millisecond

// ChangeHandler is called with the watched files that were written or
// created. Calls are serialized.
type ChangeHandler func(ctx context.Context, changed []string)

// Watcher monitors a fixed set of files. It watches their directories rather
// than the files themselves, so editors that save by renaming a new file over
// the old one are seen as well.
type Watcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]struct{}
	handler   ChangeHandler
	debouncer *Debouncer
	log       *slog.Logger

	handlerMu sync.Mutex
}

func New(log *slog.Logger, debounce time.Duration, handler ChangeHandler, files ...string) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:   fsw,
		files:     make(map[string]struct{}, len(files)),
		handler:   handler,
		debouncer: NewDebouncer(debounce),
		log:       log,
	}
	dirs := map[string]struct{}{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}
	return w, nil
}

// Run dispatches changes until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close() // nolint:errcheck
	defer w.debouncer.Stop()
	w.log.Debug("watching", "files", len(w.files))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	w.log.Debug("file event", "path", path, "op", event.Op.String())
	w.debouncer.Add(path, event.Op)
	w.debouncer.Flush(func(changed, removed []string) {
		for _, r := range removed {
			w.log.Info("watched file removed", "path", r)
		}
		if len(changed) == 0 || ctx.Err() != nil {
			return
		}
		w.handlerMu.Lock()
		defer w.handlerMu.Unlock()
		w.handler(ctx, changed)
	})
}
