package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// DefaultDebounce collapses editor save bursts into one regeneration.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a watched file settles
type ChangeFunc func(ctx context.Context, path string) error

// Watcher re-runs a callback whenever one of a set of files changes.
// Parent directories are watched rather than the files themselves, so
// editors that save by rename-and-replace keep triggering events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	onChange ChangeFunc

	mu    sync.Mutex
	timer *time.Timer
	last  string
}

// NewWatcher watches every path in files
func NewWatcher(files []string, onChange ChangeFunc) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("nothing to watch")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]struct{}, len(files)),
		debounce: DefaultDebounce,
		onChange: onChange,
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", f)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// SetDebounce overrides the settle period (tests use a short one)
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Run blocks until ctx is done, invoking the callback after changes settle.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	fire := make(chan string, 1)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debugw("Watcher detected change", logger.FieldFile, event.Name, "op", event.Op.String())
			w.schedule(event.Name, fire)

		case path := <-fire:
			if err := w.onChange(ctx, path); err != nil {
				logger.Errorw("Regeneration failed", logger.FieldFile, path, logger.FieldError, err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

// schedule restarts the debounce timer. The callback runs on the Run
// goroutine, never concurrently with itself.
func (w *Watcher) schedule(path string, fire chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = path
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		p := w.last
		w.mu.Unlock()
		select {
		case fire <- p:
		default:
		}
	})
}
