// Package watcher triggers graph rebuilds when documentation content changes.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches a docs directory tree for content changes
type Watcher struct {
	root     string
	onChange func()
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher over the docs root. onChange fires after changes
// settle for the debounce window.
func New(root string, logger *zap.Logger, onChange func()) *Watcher {
	return &Watcher{
		root:     root,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
		logger:   logger,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch starts watching the docs tree. New subdirectories are added to the
// watch set as they appear. Blocks until the context is cancelled or the
// watcher fails.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.root); err != nil {
		return err
	}

	w.logger.Info("watching docs for changes",
		zap.String("root", w.root),
		zap.Duration("debounce", w.debounce))

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(watcher, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory",
							zap.String("path", event.Name), zap.Error(err))
					}
				}
			}

			if !w.relevant(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(w.debounce, func() {
				w.logger.Info("docs changed", zap.String("path", name))
				w.onChange()
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return ctx.Err()
		}
	}
}

// relevant filters events down to content mutations
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext == ".md" || ext == ".mdx" {
		return true
	}

	// directory removes and renames reshape the tree; creates are handled
	// above when the directory gains content
	if ext == "" && event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		return true
	}
	return false
}

// addTree registers dir and every subdirectory with the fsnotify watcher
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if path != dir && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_")) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
