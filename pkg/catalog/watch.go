package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// Watch reloads the catalog whenever its listing file changes and delivers
// the fresh value on the returned channel. The channel closes when ctx ends.
// A listing that fails to parse is logged and skipped, keeping the previous
// value current.
func Watch(ctx context.Context, path string) (<-chan *Catalog, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	updates := make(chan *Catalog)
	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}

				// Debounce: drain any additional events to avoid rapid reloads
			debounce:
				for {
					select {
					case <-time.After(debounceDelay):
						break debounce
					case <-watcher.Events:
					case <-ctx.Done():
						return
					}
				}

				c, err := Load(path)
				if err != nil {
					fmt.Fprintln(os.Stderr, "Error reloading catalog:", err)
					continue
				}

				select {
				case updates <- c:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
