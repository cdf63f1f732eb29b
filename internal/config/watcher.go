package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies when the config file changes on disk.
//
// It watches the containing directory rather than the file itself so
// that editors which replace the file (write to temp, rename over)
// keep triggering notifications.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string

	// Changed receives one value per relevant filesystem event. The
	// channel is buffered and drops notifications while the consumer is
	// behind; a reload picks up the latest contents anyway.
	Changed chan struct{}

	done chan struct{}
}

// Watch starts watching the config file at path.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    path,
		Changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.Changed <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the explicit
			// :reload builtin remains available.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
