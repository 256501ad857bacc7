package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const changeBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan ports.FileChange
	logger    ports.Logger
	skip      []string
}

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: w,
		changes:   make(chan ports.FileChange, changeBuffer),
		logger:    logger,
	}, nil
}

// Start begins watching root and every directory below it whose name is not in skip.
func (w *Watcher) Start(ctx context.Context, root string, skip []string) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrWatchFailed, "root", root)
	}

	w.skip = slices.Clone(skip)
	for dir := range directories(root, w.skip) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	go w.pump(ctx)

	return nil
}

// Stop releases the fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Changes yields template changes until the watcher stops.
func (w *Watcher) Changes() iter.Seq[ports.FileChange] {
	return func(yield func(ports.FileChange) bool) {
		for change := range w.changes {
			if !yield(change) {
				return
			}
		}
	}
}

// Watched returns the watched directories in lexical order.
func (w *Watcher) Watched() []string {
	return slices.Sorted(slices.Values(w.fsWatcher.WatchList()))
}

// directories yields root and every directory below it that is not skipped.
func directories(root string, skip []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && slices.Contains(skip, d.Name()) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// pump forwards fsnotify events as changes and follows new directories.
func (w *Watcher) pump(ctx context.Context) {
	defer close(w.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			change, ok := toChange(event)
			if !ok {
				continue
			}

			select {
			case w.changes <- change:
			case <-ctx.Done():
				return
			}

			if change.Kind == ports.ChangeCreated {
				w.addIfDirectory(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("watcher: " + err.Error())
			}
		}
	}
}

func (w *Watcher) addIfDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || slices.Contains(w.skip, info.Name()) {
		return
	}
	for dir := range directories(path, w.skip) {
		_ = w.fsWatcher.Add(dir)
	}
}

func toChange(event fsnotify.Event) (ports.FileChange, bool) {
	switch {
	case event.Has(fsnotify.Write):
		return ports.FileChange{Path: event.Name, Kind: ports.ChangeWritten}, true
	case event.Has(fsnotify.Create):
		return ports.FileChange{Path: event.Name, Kind: ports.ChangeCreated}, true
	case event.Has(fsnotify.Remove):
		return ports.FileChange{Path: event.Name, Kind: ports.ChangeRemoved}, true
	case event.Has(fsnotify.Rename):
		return ports.FileChange{Path: event.Name, Kind: ports.ChangeRenamed}, true
	default:
		return ports.FileChange{}, false
	}
}
