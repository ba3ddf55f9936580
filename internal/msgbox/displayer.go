package msgbox

import (
	"sync"

	apperrors "msgbox/internal/errors"
)

// backendState caches the once-only initialization of a backend
type backendState struct {
	Backend
	once    sync.Once
	initErr error
}

func (s *backendState) init() error {
	s.once.Do(func() {
		s.initErr = s.Backend.Init()
		if s.initErr != nil {
			dbg("backend %s init failed: %v", s.Name(), s.initErr)
		} else {
			dbg("backend %s initialized", s.Name())
		}
	})
	return s.initErr
}

// Displayer shows dialogs through the first usable backend, one at a time.
type Displayer struct {
	backends   []*backendState
	dispatcher *Dispatcher
}

// Option customizes a Displayer.
type Option func(*Displayer)

// WithDispatcher makes the Displayer use d instead of starting its own UI
// goroutine. The caller is responsible for running d.Loop.
func WithDispatcher(d *Dispatcher) Option {
	return func(ds *Displayer) { ds.dispatcher = d }
}

// NewDisplayer creates a Displayer trying backends in the given order.
func NewDisplayer(backends []Backend, opts ...Option) *Displayer {
	d := &Displayer{}
	for _, b := range backends {
		d.backends = append(d.backends, &backendState{Backend: b})
	}
	for _, o := range opts {
		o(d)
	}
	if d.dispatcher == nil {
		d.dispatcher = NewDispatcher()
		d.dispatcher.Start()
	}
	return d
}

// Show displays req and blocks until the dialog is dismissed. Calls from
// several goroutines are queued and shown one after another.
func (d *Displayer) Show(req Request) error {
	var showErr error
	if err := d.dispatcher.Do(func() { showErr = d.show(req) }); err != nil {
		return apperrors.NewDispatchError("show", "dialog was not run on the UI thread", err)
	}
	return showErr
}

// show runs on the UI thread
func (d *Displayer) show(req Request) error {
	for _, b := range d.backends {
		if err := b.init(); err != nil {
			continue
		}

		err := b.Display(req)
		if err == nil {
			dbg("dialog %q dismissed (%s)", req.Title, b.Name())
			return nil
		}
		if apperrors.IsUnavailable(err) {
			dbg("backend %s unavailable for %q: %v", b.Name(), req.Title, err)
			continue
		}
		return apperrors.NewDisplayError("display", b.Name(), "dialog failed", err)
	}
	return apperrors.NewToolkitError("show", "", "no backend could show the dialog", apperrors.ErrNoBackend)
}

// Close stops the UI thread. Later Show calls fail with ErrClosed.
func (d *Displayer) Close() {
	d.dispatcher.Close()
}
