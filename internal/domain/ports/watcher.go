package ports

import (
	"context"
	"time"
)

// ChangeType identifies the kind of file change.
type ChangeType int

const (
	Created ChangeType = iota
	Modified
	Deleted
)

// FileChangeEvent describes a change to a watched file.
type FileChangeEvent struct {
	Path      string
	Type      ChangeType
	Timestamp time.Time
}

// FileWatcher watches files for changes, used by the preview server to
// regenerate the deck when the spec file is edited.
type FileWatcher interface {
	// Watch emits change events for path until ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan FileChangeEvent, error)

	// Close releases watcher resources.
	Close() error
}
