package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"mathdesk/internal/logging"
)

// Watcher watches a config file for changes and delivers reloaded
// configurations on a channel. Editors save in bursts of writes and
// renames, so events are debounced before reloading. A reload that
// fails to parse or validate is dropped and the previous config kept.
type Watcher struct {
	mu       sync.Mutex
	path     string
	fw       *fsnotify.Watcher
	updates  chan *Config
	debounce time.Duration
	group    *errgroup.Group
	cancel   context.CancelFunc
	running  bool
}

// DefaultDebounce is the settle time after the last file event before
// the config is reloaded.
const DefaultDebounce = 500 * time.Millisecond

// NewWatcher creates a watcher for the config file at path. The
// file's directory is watched, not the file itself, so the watcher
// survives editors that replace the file on save.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		path:     path,
		fw:       fw,
		updates:  make(chan *Config, 1),
		debounce: DefaultDebounce,
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in an
// errgroup goroutine until Close or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	dir := filepath.Dir(w.path)
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logging.Get(logging.CategoryConfig).Info("watching %s", dir)

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.group, ctx = errgroup.WithContext(ctx)
	w.group.Go(func() error {
		w.run(ctx)
		return nil
	})
	w.running = true
	return nil
}

// Updates returns the channel carrying reloaded configurations.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and waits for the event loop to finish.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return w.fw.Close()
	}
	w.running = false

	w.cancel()
	_ = w.group.Wait()
	return w.fw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	log := logging.Get(logging.CategoryConfig)

	// The timer starts drained; each relevant event rearms it.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug("config event: %s", event)
			timer.Reset(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)

		case <-timer.C:
			cfg, err := Load(w.path)
			if err != nil {
				log.Warn("reload failed, keeping previous config: %v", err)
				continue
			}
			log.Info("config reloaded")
			// Replace any undelivered update with the newest one.
			select {
			case w.updates <- cfg:
			default:
				select {
				case <-w.updates:
				default:
				}
				w.updates <- cfg
			}
		}
	}
}
