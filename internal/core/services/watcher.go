package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/unifill-labs/unifill-cli/internal/logger"
)

// DatasetWatcher watches the resolved dataset source file and reports
// when the companion data tool rewrites it, so an open picker can reload
// a fresh catalog.
type DatasetWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan struct{}
}

// NewDatasetWatcher creates a watcher for one dataset file. The parent
// directory is watched, not the file itself, because generators typically
// replace the file via rename.
func NewDatasetWatcher(path string) (*DatasetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	return &DatasetWatcher{
		path:    path,
		watcher: w,
		changes: make(chan struct{}, 1),
	}, nil
}

// Changes returns the channel signalled when the dataset file changes.
// Signals are coalesced; a pending signal absorbs further changes.
func (w *DatasetWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Run processes filesystem events until the context is cancelled.
func (w *DatasetWatcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Dataset changed on disk: %s (%s)", event.Name, event.Op)
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Dataset watcher error: %v", err)
		}
	}
}
