// Package watcher implements file system watching for rewrite cache
// invalidation and hot-reload propagation.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"unique"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/serv/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// defaultSkipDirectories are directories never worth watching in a web
// project; served module sources under them are invalidated through package
// installs, not edits.
var defaultSkipDirectories = []string{".git", ".jj", "node_modules", "web_modules", "dist"}

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	skip      map[string]bool
	root      unique.Handle[string]
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher. The ignore list extends the
// default skip set.
func NewWatcher(ignore []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	skip := make(map[string]bool, len(defaultSkipDirectories)+len(ignore))
	for _, dir := range defaultSkipDirectories {
		skip[dir] = true
	}
	for _, dir := range ignore {
		skip[dir] = true
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		skip:      skip,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = unique.Make(root)

	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories and keep walking.
				return nil //nolint:nilerr // intentional: a broken subtree must not stop the walk
			}
			if d.IsDir() {
				if w.skip[d.Name()] {
					return fs.SkipDir
				}
				if !yield(path) {
					return filepath.SkipAll
				}
			}
			return nil
		})
	}
}

// processEvents converts raw fsnotify events to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

			// New directories join the watch set immediately so edits
			// under them are not missed.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !w.skip[info.Name()] {
					for dir := range w.watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	ops := []struct {
		fs fsnotify.Op
		w  ports.WatchOp
	}{
		{fsnotify.Write, ports.OpWrite},
		{fsnotify.Create, ports.OpCreate},
		{fsnotify.Remove, ports.OpRemove},
		{fsnotify.Rename, ports.OpRename},
	}
	for _, op := range ops {
		if event.Op&op.fs == op.fs {
			return &ports.WatchEvent{Path: event.Name, Operation: op.w}
		}
	}
	return nil
}
