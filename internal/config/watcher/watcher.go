// Package watcher reports changes to configuration files.
//
// Files are watched through their parent directories with fsnotify, so
// editors that save by writing a new file and renaming it over the old one
// are seen as well. Bursts of events for the same file are coalesced into
// one Event after a short quiet period.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher errors.
var (
	ErrWatcherClosed = errors.New("watcher closed")
)

// Op is the kind of change seen for a file.
type Op uint8

const (
	OpWrite Op = iota + 1
	OpCreate
	OpRemove
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event is a coalesced change to a watched file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before an event is delivered.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watcher watches a set of files.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	files    map[string]bool
	dirs     map[string]int
	debounce time.Duration
	pending  map[string]*time.Timer
	pendOps  map[string]Op

	events chan Event
	errors chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher and starts its event loop.
func New(opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]*time.Timer),
		pendOps:  make(map[string]Op),
		events:   make(chan Event, 16),
		errors:   make(chan error, 4),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch adds a file. The file need not exist yet, but its directory must.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Unwatch removes a file.
func (w *Watcher) Unwatch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[abs] {
		return nil
	}
	delete(w.files, abs)

	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.fsw.Remove(dir)
	}
	return nil
}

// Files returns the watched files.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Events returns the channel of coalesced file events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for _, t := range w.pending {
		t.Stop()
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()

	close(w.events)
	close(w.errors)
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}

	w.pendOps[path] = coalesce(w.pendOps[path], op)
	if t, ok := w.pending[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() { w.flush(path) })
}

func (w *Watcher) flush(path string) {
	w.mu.Lock()
	op := w.pendOps[path]
	delete(w.pendOps, path)
	delete(w.pending, path)
	closed := w.closed
	w.mu.Unlock()

	if closed || op == 0 {
		return
	}

	select {
	case w.events <- Event{Path: path, Op: op, Time: time.Now()}:
	case <-w.closeCh:
	}
}

// coalesce merges a new operation into a pending one. A removal wins over
// everything; a file that was removed and then recreated is a create.
func coalesce(prev, next Op) Op {
	switch {
	case prev == 0:
		return next
	case next == OpRemove:
		return OpRemove
	case prev == OpRemove:
		return OpCreate
	case prev == OpCreate:
		return OpCreate
	default:
		return next
	}
}

func convertOp(op fsnotify.Op) Op {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return OpRemove
	case op.Has(fsnotify.Create):
		return OpCreate
	case op.Has(fsnotify.Write):
		return OpWrite
	default:
		return 0
	}
}
