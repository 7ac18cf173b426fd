// Package watch reloads the page when its configuration or sidebar files
// change on disk.
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

// DefaultDebounce coalesces the burst of events an editor produces on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher calls a reload function after any of a set of files changes.
type Watcher struct {
	fw       *fsnotify.Watcher
	reload   func() error
	debounce time.Duration

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]bool
}

// New starts watching paths. The parent directories are watched rather than
// the files themselves so that atomic rename-on-save is seen.
func New(paths []string, reload func() error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{
		fw:       fw,
		reload:   reload,
		debounce: DefaultDebounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	if err := w.Watch(paths); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Watch replaces the set of watched files with paths. It may be called from
// the reload function when the set of relevant files changes. Directories
// that are no longer needed stay watched; their events are ignored.
func (w *Watcher) Watch(paths []string) error {
	files := make(map[string]bool, len(paths))
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files = files
	return nil
}

// SetDebounce changes the quiet period before a reload.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Run dispatches events until ctx is done or the watcher is closed. Reload
// errors are logged; the caller keeps serving its previous state.
func (w *Watcher) Run(ctx context.Context) {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			slog.DebugContext(ctx, "File changed", "path", event.Name, "op", event.Op.String())
			fire = time.After(w.debounce)
		case <-fire:
			fire = nil
			if err := w.reload(); err != nil {
				slog.WarnContext(ctx, "Reload failed, keeping previous page", "err", err)
				continue
			}
			slog.InfoContext(ctx, "Page reloaded")
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.WarnContext(ctx, "Error watching files", "err", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}
