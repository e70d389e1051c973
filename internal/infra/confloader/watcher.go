package confloader

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor emits for one save.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc is called with the absolute path of a changed file.
type ChangeFunc func(path string)

// Watcher calls per-file handlers when watched files change.
//
// fsnotify watches each file's parent directory, so saves done by rename or
// atomic replace are still seen. Events for untracked siblings are dropped.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu       sync.Mutex
	handlers map[string][]ChangeFunc
	pending  map[string]*time.Timer

	done     chan struct{}
	stopOnce sync.Once
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets the logger for the watcher.
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) { w.logger = logger }
}

// WithDebounce sets how long a file must stay quiet before its handlers
// run. Zero runs them on every event.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// NewWatcher creates a new file watcher. Call Start or StartAsync to begin
// delivering events.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:       fs,
		logger:   slog.Default(),
		debounce: DefaultDebounce,
		handlers: make(map[string][]ChangeFunc),
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch registers fn for changes to path. A file may have several handlers.
func (w *Watcher) Watch(path string, fn ChangeFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := w.fs.Add(dir); err != nil {
		return err
	}

	w.mu.Lock()
	w.handlers[abs] = append(w.handlers[abs], fn)
	w.mu.Unlock()

	w.logger.Debug("watching file", "file", abs)
	return nil
}

// Start delivers events until Stop is called.
func (w *Watcher) Start() {
	w.logger.Info("file watcher started")
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.schedule(ev.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// StartAsync runs Start in a goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop stops the watcher and cancels pending notifications. Calling it
// again is a no-op.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		for path, t := range w.pending {
			t.Stop()
			delete(w.pending, path)
		}
		w.mu.Unlock()
		if err = w.fs.Close(); err != nil {
			w.logger.Error("failed to close file watcher", "error", err)
			return
		}
		w.logger.Info("file watcher stopped")
	})
	return err
}

// schedule arms (or re-arms) the debounce timer for name if it is tracked.
func (w *Watcher) schedule(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.handlers[abs]; !ok {
		return
	}
	if w.debounce <= 0 {
		go w.fire(abs)
		return
	}
	if t, ok := w.pending[abs]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[abs] = time.AfterFunc(w.debounce, func() { w.fire(abs) })
}

func (w *Watcher) fire(abs string) {
	select {
	case <-w.done:
		return
	default:
	}

	w.mu.Lock()
	delete(w.pending, abs)
	fns := append([]ChangeFunc(nil), w.handlers[abs]...)
	w.mu.Unlock()

	w.logger.Debug("watched file changed", "file", abs)
	for _, fn := range fns {
		fn(abs)
	}
}
