// Package watcher reports when the file open in the editor changes on disk.
//
// The parent directory is watched rather than the file itself: most editors
// save by writing a temp file and renaming it over the original, which drops
// a watch on the file's inode. Bursts of events are debounced into one
// notification published on the watcher's broker.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/pubsub"
)

// EventType says what happened to the watched file.
type EventType int

const (
	// FileChanged means the file was written or replaced.
	FileChanged EventType = iota
	// FileRemoved means the file was removed or renamed away.
	FileRemoved
	// WatcherError means fsnotify reported an error.
	WatcherError
)

func (t EventType) String() string {
	switch t {
	case FileChanged:
		return "changed"
	case FileRemoved:
		return "removed"
	case WatcherError:
		return "error"
	default:
		return "unknown"
	}
}

// WatcherEvent is published after the debounce window settles.
type WatcherEvent struct {
	Type  EventType
	Path  string
	Error error
}

// Config configures a Watcher.
type Config struct {
	Path        string
	DebounceDur time.Duration
}

// DefaultConfig watches path with a 200ms debounce.
func DefaultConfig(path string) Config {
	return Config{Path: path, DebounceDur: 200 * time.Millisecond}
}

// Watcher watches one file.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	broker    *pubsub.Broker[WatcherEvent]
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a watcher. Call Start to begin receiving events.
func New(cfg Config) (*Watcher, error) {
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", cfg.Path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsw,
		path:      abs,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[WatcherEvent](),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker events are published on.
func (w *Watcher) Broker() *pubsub.Broker[WatcherEvent] {
	return w.broker
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start watches the file's directory.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "path", w.path, "debounce", w.debounce)
	go w.loop()
	return nil
}

// Stop ends the watch and closes the broker. It is safe to call twice.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.broker.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending EventType
	)

	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			typ, relevant := w.classify(ev)
			if !relevant {
				continue
			}
			pending = typ
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			log.Debug(log.CatWatcher, "file event", "type", pending, "path", w.path)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: pending, Path: w.path})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "fsnotify error", err, "path", w.path)
			w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: WatcherError, Path: w.path, Error: err})

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// classify maps an fsnotify event on the watched file to an EventType.
// Within one debounce window the last event wins, so a rename-then-create
// save reports FileChanged.
func (w *Watcher) classify(ev fsnotify.Event) (EventType, bool) {
	if filepath.Clean(ev.Name) != w.path {
		return 0, false
	}
	switch {
	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
		return FileChanged, true
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return FileRemoved, true
	default:
		return 0, false
	}
}
