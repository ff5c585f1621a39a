package scene

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long a scene file must be left alone before it is reloaded.
const Settle = 100 * time.Millisecond

// Watcher reloads a scene file whenever it changes. Scenes that fail to load
// are sent to Errors instead.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Scenes  chan *Scene
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the scene at path. The directory is watched so that
// editors which replace the file are followed.
func Watch(path string) (*Watcher, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    path,
		Scenes:  make(chan *Scene, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching. Scenes and Errors are closed once the watcher has
// finished.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Scenes)
	defer close(w.Errors)

	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settled = time.After(Settle)
		case <-settled:
			settled = nil
			s, err := LoadFile(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.Scenes <- s:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
