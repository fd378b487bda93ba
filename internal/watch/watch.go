// Package watch reports changes made to the open file by other programs.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"textedit/internal/logger"
)

// Event says the watched file was written, or removed/renamed away.
type Event struct {
	Path    string
	Removed bool
}

// Watcher watches the directory holding one file and filters events down to it.
// Editors commonly replace files by rename, which a watch on the file itself misses.
type Watcher struct {
	fs     *fsnotify.Watcher
	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
	log    *slog.Logger

	mu   sync.Mutex
	dir  string
	path string
}

func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		fs:     fw,
		events: make(chan Event, 8),
		done:   make(chan struct{}),
		log:    logger.With("component", "watch"),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events delivers changes to the watched file. Bursts may be coalesced.
func (w *Watcher) Events() <-chan Event { return w.events }

// Path is the file currently watched, or "".
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Watch switches the watch to path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir != dir {
		if w.dir != "" {
			_ = w.fs.Remove(w.dir)
		}
		if err := w.fs.Add(dir); err != nil {
			w.dir, w.path = "", ""
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.path = abs
	w.log.Debug("watching file", "path", abs)
	return nil
}

// Unwatch stops reporting events until the next Watch.
func (w *Watcher) Unwatch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir != "" {
		_ = w.fs.Remove(w.dir)
	}
	w.dir, w.path = "", ""
}

// Close stops the watcher and closes the Events channel.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	close(w.events)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()
	if path == "" || filepath.Clean(ev.Name) != path {
		return
	}

	var out Event
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		out = Event{Path: path, Removed: true}
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
		out = Event{Path: path}
	default:
		return
	}
	select {
	case w.events <- out:
	default:
		// a pending event already tells the UI to look again
	}
}
