package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"nimbus-ctl/config/debounce"
	"nimbus-ctl/log"

	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long the file must stay quiet before a reload.
// Editors emit a burst of events per save, and reading on the first
// one can catch a half-written file.
const watchSettle = 250 * time.Millisecond

// Watcher reloads the Store when config.toml is edited outside the
// app and signals the change on Events so the UI can react.
type Watcher struct {
	store  *Store
	fsw    *fsnotify.Watcher
	settle *debounce.Debouncer
	events chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	errLog *log.Every
}

// NewWatcher starts watching the config directory. The directory is
// created if missing since fsnotify cannot watch a nonexistent path.
func NewWatcher(store *Store) (*Watcher, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:  store,
		fsw:    fsw,
		settle: debounce.New(watchSettle),
		events: make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
		errLog: log.NewEvery(30 * time.Second),
	}
	go w.run()
	return w, nil
}

// Events signals once per external config change, after the Store has
// already been reloaded.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.cancel()
	w.settle.Cancel()
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != ConfigFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.settle.Trigger(w.reload)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.errLog.ShouldLog() {
				log.WarningLog.Printf("config watcher error: %v", err)
			}
		}
	}
}

// reload runs on the settle timer goroutine once the event burst has
// gone quiet.
func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}
	w.store.Reload()
	log.InfoLog.Printf("config file changed on disk, reloaded")

	select {
	case w.events <- struct{}{}:
	default:
	}
}
