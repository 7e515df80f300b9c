package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/discrepancy-finder/internal/logger"
)

// DefaultDebounce is how long the watcher waits for further events before
// emitting a batch.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports table files created or written in a directory.
type Watcher struct {
	rootPath string
	debounce time.Duration
}

// NewWatcher creates a watcher over rootPath. A non-positive debounce
// uses DefaultDebounce.
func NewWatcher(rootPath string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{rootPath: rootPath, debounce: debounce}
}

// Watch starts watching and returns a channel of changed file batches.
// Each batch is sorted and free of duplicates. The channel is closed when
// ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan []string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.rootPath); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.rootPath, err)
	}

	out := make(chan []string)
	go w.loop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- []string) {
	defer close(out)
	defer fsw.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if path, ok := w.handleFsEvent(event); ok {
				pending[path] = struct{}{}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error on %s: %v", w.rootPath, err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for path := range pending {
				batch = append(batch, path)
			}
			sort.Strings(batch)
			pending = make(map[string]struct{})

			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}
		}
	}
}

// handleFsEvent returns the path of a created or written table file.
// Removals, renames, chmods, directories and hidden files are ignored.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	rel, err := filepath.Rel(w.rootPath, event.Name)
	if err != nil {
		rel = event.Name
	}
	if !isTableFile(event.Name) || isHidden(rel) {
		return "", false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return event.Name, true
}
