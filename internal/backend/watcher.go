package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/font-picker/internal/font"
	"github.com/fsnotify/fsnotify"
)

// Event conveys a reloaded catalog or a reload error.
type Event struct {
	Items []font.Item
	Err   error
}

// Watcher observes the catalog file and publishes reload events. The parent
// directory is watched rather than the file itself so editors that replace
// the file (write-to-temp then rename) are still seen.
type Watcher struct {
	path     string
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	fsw    *fsnotify.Watcher
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the catalog file. The settle interval throttles
// reloads so an editor's burst of write events coalesces into one.
func NewWatcher(path string, settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		throttle: newThrottle(settle),
		ctx:      ctx,
		cancel:   cancel,
		fsw:      fsw,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns the channel of catalog reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
	w.fsw.Close()
}

// Wait blocks until the run loop has exited and the events channel closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if !w.throttle.wait(w.ctx) {
				return
			}
			if !w.emit(w.reload()) {
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if !w.emit(Event{Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Base(ev.Name) != filepath.Base(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() Event {
	items, err := font.LoadFile(w.path)
	return Event{Items: items, Err: err}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
