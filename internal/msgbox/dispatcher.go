package msgbox

import (
	"fmt"
	"runtime"
	"sync"

	apperrors "msgbox/internal/errors"
)

type job struct {
	fn   func()
	err  error
	done chan struct{}
}

// Dispatcher runs submitted functions one at a time, in submission order,
// on a single OS thread (single worker).
type Dispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []*job
	running bool
	closed  bool
}

// NewDispatcher constructs a Dispatcher. Nothing runs until Loop or Start.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// Start runs the loop on a new goroutine.
func (d *Dispatcher) Start() {
	go d.Loop()
	dbg("dispatcher started")
}

// Loop processes jobs on the calling goroutine, locked to its OS thread,
// until Close. Hand it the main goroutine when the toolkit insists on the
// main thread. A second concurrent Loop returns immediately.
func (d *Dispatcher) Loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return
	}
	d.running = true
	d.mu.Unlock()

	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if d.closed {
			d.running = false
			d.mu.Unlock()
			dbg("dispatcher loop exited")
			return
		}
		j := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.run(j)
	}
}

// run executes one job; a panic is reported to the submitter instead of
// killing the UI thread
func (d *Dispatcher) run(j *job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			j.err = fmt.Errorf("panic on UI thread: %v", r)
		}
	}()
	j.fn()
}

// Do queues fn and blocks until it has run on the UI thread.
func (d *Dispatcher) Do(fn func()) error {
	j := &job{fn: fn, done: make(chan struct{})}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return apperrors.ErrClosed
	}
	d.queue = append(d.queue, j)
	pending := len(d.queue)
	d.cond.Signal()
	d.mu.Unlock()

	dbg("job queued (pending=%d)", pending)
	<-j.done
	return j.err
}

// Close stops the loop after the current job. Queued jobs are dropped and
// their submitters get ErrClosed.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	dropped := d.queue
	d.queue = nil
	d.cond.Broadcast()
	d.mu.Unlock()

	for _, j := range dropped {
		j.err = apperrors.ErrClosed
		close(j.done)
	}
	dbg("dispatcher closed, dropped %d queued jobs", len(dropped))
}
