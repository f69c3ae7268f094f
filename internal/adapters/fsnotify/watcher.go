// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the parent directories of the
// target files (editors commonly replace files on save, which would drop a
// direct file watch), filters events down to the named files, and
// debounces rapid event bursts.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses duplicate events for the same file within
// this window (editors often trigger several writes per save).
const debounceInterval = 200 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring the given files. onChange is called with the
// absolute path of a watched file whenever it is written, created or
// renamed into place.
func (w *Watcher) Watch(paths []string, onChange func(path string)) error {
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	lastEvent := make(map[string]time.Time, len(targets))
	var dmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || !targets[abs] {
					continue
				}

				dmu.Lock()
				now := time.Now()
				if now.Sub(lastEvent[abs]) < debounceInterval {
					dmu.Unlock()
					continue
				}
				lastEvent[abs] = now
				dmu.Unlock()

				onChange(abs)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient (e.g. a dir briefly vanishing
				// during an atomic save); keep delivering events.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop terminates event delivery and releases the OS watch handles.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
