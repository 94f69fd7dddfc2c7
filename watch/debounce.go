package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debouncer batches file change events so a burst of writes from an editor
// results in a single run.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]fsnotify.Op
	interval time.Duration
	timer    *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]fsnotify.Op),
		interval: interval,
	}
}

// Add records a file change event.
func (d *Debouncer) Add(path string, op fsnotify.Op) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[path] |= op
}

// Flush (re)arms the timer. When it fires without further calls to Flush, the
// pending paths are passed to callback, split by whether the last state of the
// file is present or gone.
func (d *Debouncer) Flush(callback func(changed, removed []string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		var changed, removed []string
		for path, op := range d.pending {
			if op.Has(fsnotify.Write) || op.Has(fsnotify.Create) {
				changed = append(changed, path)
			} else if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
				removed = append(removed, path)
			}
		}
		clear(d.pending)
		d.mu.Unlock()

		// call the callback outside the lock
		if len(changed) > 0 || len(removed) > 0 {
			callback(changed, removed)
		}
	})
}

// Stop cancels a pending flush.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
