package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch reloads the catalog data file whenever it changes on disk and
// publishes the fresh snapshot through the store. The parent directory is
// watched rather than the file itself because most editors and deploy tools
// replace the file, which would drop a direct watch. A reload that fails
// validation is logged and the old snapshot stays published.
func Watch(ctx context.Context, path string, store *Store) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create catalog watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	log.WithField("path", target).Info("Watching catalog file for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			catalog, err := Load(path)
			if err != nil {
				log.WithError(err).Warn("Catalog reload failed, keeping previous snapshot")
				continue
			}
			store.Replace(catalog)
			log.WithFields(log.Fields{
				"categories": len(catalog.Categories),
				"items":      catalog.ItemCount(),
			}).Info("Catalog reloaded")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Catalog watcher error")
		}
	}
}
