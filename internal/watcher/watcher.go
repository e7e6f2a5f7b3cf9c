// Package watcher provides file system watching with debouncing for
// the viewed source file. Changes are re-read, summarized with a line
// diff, and published through a pubsub broker as reload events.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/glint/internal/log"
	"github.com/zjrosen/glint/internal/pubsub"
)

// Reload describes a change to the watched file.
type Reload struct {
	Path    string
	Content string
	// Added and Removed are line counts relative to the previous content.
	Added   int
	Removed int
}

// Watcher monitors a single source file for changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	broker    *pubsub.Broker[Reload]
	last      string
	done      chan struct{}
}

// Config holds watcher configuration options.
type Config struct {
	Path        string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		DebounceDur: 200 * time.Millisecond,
	}
}

// New creates a watcher for the given file. The initial content seeds
// the diff baseline.
func New(cfg Config, initialContent string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      cfg.Path,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[Reload](),
		last:      initialContent,
		done:      make(chan struct{}),
	}, nil
}

// Broker exposes the event broker for subscribing.
func (w *Watcher) Broker() *pubsub.Broker[Reload] {
	return w.broker
}

// Start begins watching the file's directory. Watching the directory
// instead of the file survives editors that replace the file on save.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	go w.loop()

	log.Debug(log.CatWatcher, "Watching file", "path", w.path, "debounce", w.debounce)
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !w.isRelevantEvent(event) {
				continue
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				w.reload()
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching; error visibility goes through the log.
			log.ErrorErr(log.CatWatcher, "Watcher error", err, "path", w.path)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// reload re-reads the file and publishes the change.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// File may be mid-replace; the next event retries.
		log.ErrorErr(log.CatWatcher, "Failed to re-read file", err, "path", w.path)
		return
	}

	content := string(data)
	if content == w.last {
		return
	}

	added, removed := countLineChanges(w.last, content)
	w.last = content

	log.Info(log.CatWatcher, "File changed", "path", w.path, "added", added, "removed", removed)
	w.broker.Publish(pubsub.UpdatedEvent, Reload{
		Path:    w.path,
		Content: content,
		Added:   added,
		Removed: removed,
	})
}

// isRelevantEvent checks if the event should trigger a reload.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	// Write for in-place saves; Create and Rename for editors that
	// write a temp file and move it over the original.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}
