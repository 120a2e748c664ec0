// Package watcher emits file change events for the preview server using
// fsnotify. The parent directory is watched rather than the file itself so
// editors that rename-replace on save keep triggering events.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/deckgen/deckgen/internal/domain/ports"
)

// debounceInterval suppresses event bursts from a single save.
const debounceInterval = 200 * time.Millisecond

// FSNotifyWatcher implements the FileWatcher port on top of fsnotify.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
}

// New creates a filesystem watcher.
func New() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &FSNotifyWatcher{watcher: w}, nil
}

// Watch emits debounced change events for path until ctx is cancelled.
func (w *FSNotifyWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	events := make(chan ports.FileChangeEvent)

	go func() {
		defer close(events)

		var lastSent time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}

				changeType, relevant := mapOp(event.Op)
				if !relevant {
					continue
				}

				now := time.Now()
				if now.Sub(lastSent) < debounceInterval {
					continue
				}
				lastSent = now

				select {
				case events <- ports.FileChangeEvent{
					Path:      absPath,
					Type:      changeType,
					Timestamp: now,
				}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Close releases the underlying fsnotify watcher.
func (w *FSNotifyWatcher) Close() error {
	return w.watcher.Close()
}

func mapOp(op fsnotify.Op) (ports.ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return ports.Created, true
	case op.Has(fsnotify.Write), op.Has(fsnotify.Rename):
		return ports.Modified, true
	case op.Has(fsnotify.Remove):
		return ports.Deleted, true
	default:
		return ports.Modified, false
	}
}

// Ensure FSNotifyWatcher implements ports.FileWatcher.
var _ ports.FileWatcher = (*FSNotifyWatcher)(nil)
