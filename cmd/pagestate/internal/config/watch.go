package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-resolves the config whenever the file at path is written,
// created or renamed into place, and passes the result to onChange. It
// blocks until ctx is done. The parent directory is watched so editors that
// replace the file atomically are still seen.
func Watch(ctx context.Context, dir, path string, onChange func(*Resolved, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	explicit := path
	if filepath.Clean(path) == filepath.Join(dir, FileName) {
		explicit = ""
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			onChange(Resolve(dir, explicit))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onChange(nil, err)
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(event.Name)
	return err == nil && name == target
}
