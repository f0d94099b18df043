// Package watcher decodes a save file again whenever it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/loader"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/retroenv/retrogolib/log"
)

// Handler is called with every successfully decoded version of the watched file.
type Handler func(img *save.SaveImage)

// Watcher watches a save file for changes.
type Watcher struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new save file watcher.
func New(logger *log.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Watch decodes the file once and then after every write until the context is done.
// The directory of the file is watched, emulators often replace save files instead of
// writing them in place. Files that fail to decode are logged and skipped.
func (w *Watcher) Watch(ctx context.Context, path string, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	w.reload(target, handle)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("Save file changed",
					log.String("file", event.Name),
					log.String("op", event.Op.String()))
				w.reload(target, handle)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watching save file failed", log.Err(err))
		}
	}
}

func (w *Watcher) reload(path string, handle Handler) {
	img, err := w.loader.Load(path)
	if err != nil {
		w.logger.Warn("Skipping unreadable save file", log.String("file", path), log.Err(err))
		return
	}
	handle(img)
}
