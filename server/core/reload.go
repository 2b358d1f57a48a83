package core

import (
	"log"

	cfg "github.com/automoto/lazertag/config"
)

// reloader applies tuning file changes between ticks.
type reloader struct {
	path    string
	watcher *cfg.Watcher
}

func newReloader(path string) (*reloader, error) {
	tuning, err := cfg.Load(path, cfg.Current())
	if err != nil {
		return nil, err
	}
	cfg.Apply(tuning)

	w, err := cfg.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[config] loaded %s, watching for changes", path)
	return &reloader{path: path, watcher: w}, nil
}

// Poll applies a pending change, if any. It never blocks.
func (r *reloader) Poll() {
	select {
	case <-r.watcher.Events:
	case err := <-r.watcher.Errors:
		log.Printf("[config] watch error: %v", err)
		return
	default:
		return
	}

	tuning, err := cfg.Load(r.path, cfg.Current())
	if err != nil {
		log.Printf("[config] reload %s: %v", r.path, err)
		return
	}
	cfg.Apply(tuning)
	log.Printf("[config] reloaded %s", r.path)
}

func (r *reloader) Close() {
	if err := r.watcher.Close(); err != nil {
		log.Printf("[config] close watcher: %v", err)
	}
}
