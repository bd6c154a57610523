package ridership

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron"
)

// StartRefresher wires the optional snapshot refresh triggers: a file watch
// on the CSV and/or a fixed-interval rebuild. A failed rebuild keeps the
// previous snapshot. The returned stop function releases both triggers.
func StartRefresher(store *SnapshotStore, cfg AppConfig) (func(), error) {
	rebuild := func(reason string) {
		snap, err := BuildSnapshot(cfg)
		if err != nil {
			log.Errorf("snapshot rebuild failed (%s): %v", reason, err)
			return
		}
		store.Set(snap)
		log.Infof("snapshot rebuilt (%s): %d rows", reason, snap.Raw.Nrow())
	}

	var watcher *fsnotify.Watcher
	if cfg.Refresh.Watch {
		var err error
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("create watcher: %w", err)
		}
		if err := watcher.Add(filepath.Dir(cfg.Dataset.Path)); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch dataset dir: %w", err)
		}
		target := filepath.Clean(cfg.Dataset.Path)
		go func() {
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if filepath.Clean(event.Name) != target {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						rebuild("file change")
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Errorf("dataset watcher error: %v", err)
				}
			}
		}()
		log.Infof("watching %s for changes", cfg.Dataset.Path)
	}

	var c *cron.Cron
	if cfg.Refresh.Interval != "" {
		c = cron.New()
		spec := fmt.Sprintf("@every %s", cfg.Refresh.Interval)
		if err := c.AddFunc(spec, func() { rebuild("scheduled") }); err != nil {
			if watcher != nil {
				watcher.Close()
			}
			return nil, fmt.Errorf("schedule refresh: %w", err)
		}
		c.Start()
		log.Infof("scheduled snapshot refresh %s", spec)
	}

	return func() {
		if watcher != nil {
			watcher.Close()
		}
		if c != nil {
			c.Stop()
		}
	}, nil
}
