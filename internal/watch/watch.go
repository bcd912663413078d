// Package watch emits debounced change notifications for directory trees.
package watch

import (
	"path/filepath"
	"time"

	"github.com/rjeczalik/notify"
)

const debounce = 25 * time.Millisecond

// W watches a set of directories recursively and coalesces change events
// so one save doesn't trigger a rebuild storm.
type W struct {
	// Receives one batch of changed paths per settled burst of events
	Changed chan []string

	evs chan notify.EventInfo
}

// New creates a new W that monitors the given directories.
func New(dirs ...string) (*W, error) {
	w := &W{
		Changed: make(chan []string, 1),
		evs:     make(chan notify.EventInfo, 16),
	}

	for _, dir := range dirs {
		err := notify.Watch(filepath.Join(dir, "..."), w.evs, notify.All)
		if err != nil {
			notify.Stop(w.evs)
			return nil, err
		}
	}

	go w.run()

	return w, nil
}

// Stop terminates this instance
func (w *W) Stop() {
	notify.Stop(w.evs)
	close(w.evs)
}

func (w *W) run() {
	delay := time.NewTimer(time.Hour)
	delay.Stop()

	var paths []string

	for {
		select {
		case ev, ok := <-w.evs:
			if !ok {
				return
			}

			paths = append(paths, ev.Path())
			delay.Reset(debounce)

		case <-delay.C:
			w.Changed <- paths
			paths = nil
		}
	}
}

// HasExt checks if any path has one of the given extensions
func HasExt(paths []string, exts ...string) bool {
	for _, path := range paths {
		for _, ext := range exts {
			if filepath.Ext(path) == ext {
				return true
			}
		}
	}

	return false
}
