package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Editors replace files with rename+create; watching the directory
// and filtering on the file name survives that.
const debounce = 200 * time.Millisecond

// WatchFile invokes onChange whenever the file at path is written or
// recreated, until the context is cancelled. Bursts of events within
// the debounce window collapse into one call.
func WatchFile(ctx context.Context, path string, log *zap.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, onChange)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("file watch error", zap.String("path", path), zap.Error(err))
			}
		}
	}()

	log.Info("watching file", zap.String("path", path))
	return nil
}
