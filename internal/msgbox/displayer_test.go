package msgbox

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "msgbox/internal/errors"
)

// fakeBackend records what it was asked to show
type fakeBackend struct {
	name       string
	initErr    error
	displayErr error
	delay      time.Duration

	mu        sync.Mutex
	inits     int
	shown     []Request
	active    int32
	maxActive int32
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Init() error {
	f.mu.Lock()
	f.inits++
	f.mu.Unlock()
	return f.initErr
}

func (f *fakeBackend) Display(req Request) error {
	n := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		old := atomic.LoadInt32(&f.maxActive)
		if n <= old || atomic.CompareAndSwapInt32(&f.maxActive, old, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.displayErr != nil {
		return f.displayErr
	}
	f.shown = append(f.shown, req)
	return nil
}

func (f *fakeBackend) shownRequests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.shown...)
}

func (f *fakeBackend) initCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits
}

func newTestDisplayer(t *testing.T, backends ...Backend) *Displayer {
	t.Helper()
	d := NewDisplayer(backends)
	t.Cleanup(d.Close)
	return d
}

func TestShowPassesRequestVerbatim(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
	}{
		{"scenario", Request{Message: "File not found", Title: "Error"}},
		{"empty", Request{}},
		{"percent", Request{Message: "100% done", Title: "Error"}},
		{"format verbs", Request{Message: "%s %d %n %%", Title: "%v"}},
		{"whitespace", Request{Message: "  padded\n", Title: "\t"}},
		{"long", Request{Message: strings.Repeat("a", 10000), Title: "Error"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb := &fakeBackend{name: "fake"}
			d := newTestDisplayer(t, fb)

			if err := d.Show(tc.req); err != nil {
				t.Fatalf("Show failed: %v", err)
			}
			shown := fb.shownRequests()
			if len(shown) != 1 {
				t.Fatalf("Expected one dialog, got %d", len(shown))
			}
			if shown[0] != tc.req {
				t.Errorf("Request was modified on its way to the backend")
			}
		})
	}
}

func TestInitRunsOnce(t *testing.T) {
	fb := &fakeBackend{name: "fake"}
	d := newTestDisplayer(t, fb)

	for i := 0; i < 3; i++ {
		if err := d.Show(Request{Message: "again", Title: "Error"}); err != nil {
			t.Fatalf("Show %d failed: %v", i, err)
		}
	}
	if fb.initCount() != 1 {
		t.Errorf("Expected Init once, got %d", fb.initCount())
	}
	if len(fb.shownRequests()) != 3 {
		t.Errorf("Expected three independent dialogs, got %d", len(fb.shownRequests()))
	}
}

func TestFailedInitIsCachedAndSkipped(t *testing.T) {
	broken := &fakeBackend{name: "broken", initErr: unavailable("broken", "no display")}
	working := &fakeBackend{name: "working"}
	d := newTestDisplayer(t, broken, working)

	for i := 0; i < 2; i++ {
		if err := d.Show(Request{Message: "m", Title: "t"}); err != nil {
			t.Fatalf("Show failed: %v", err)
		}
	}
	if broken.initCount() != 1 {
		t.Errorf("Expected failed Init to be attempted once, got %d", broken.initCount())
	}
	if len(broken.shownRequests()) != 0 {
		t.Error("A backend whose Init failed must not display")
	}
	if len(working.shownRequests()) != 2 {
		t.Errorf("Expected fallback backend to show both dialogs, got %d", len(working.shownRequests()))
	}
}

func TestUnavailableDisplayFallsThrough(t *testing.T) {
	first := &fakeBackend{name: "first", displayErr: unavailable("first", "loop stopped")}
	second := &fakeBackend{name: "second"}
	d := newTestDisplayer(t, first, second)

	if err := d.Show(Request{Message: "m", Title: "t"}); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if len(second.shownRequests()) != 1 {
		t.Error("Expected second backend to show the dialog")
	}
}

func TestDisplayErrorStopsFallback(t *testing.T) {
	cause := errors.New("tool crashed")
	first := &fakeBackend{name: "first", displayErr: cause}
	second := &fakeBackend{name: "second"}
	d := newTestDisplayer(t, first, second)

	err := d.Show(Request{Message: "m", Title: "t"})
	if !errors.Is(err, cause) {
		t.Fatalf("Expected display error wrapping cause, got %v", err)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Type != apperrors.ErrorTypeDisplay || appErr.Backend != "first" {
		t.Errorf("Expected display AppError for 'first', got %v", err)
	}
	if len(second.shownRequests()) != 0 {
		t.Error("A failed dialog must not be repeated by the next backend")
	}
}

func TestNoBackend(t *testing.T) {
	d := newTestDisplayer(t, &fakeBackend{name: "a", initErr: unavailable("a", "nope")})

	err := d.Show(Request{Message: "m", Title: "t"})
	if !errors.Is(err, apperrors.ErrNoBackend) {
		t.Errorf("Expected ErrNoBackend, got %v", err)
	}

	empty := newTestDisplayer(t)
	if err := empty.Show(Request{}); !errors.Is(err, apperrors.ErrNoBackend) {
		t.Errorf("Expected ErrNoBackend without backends, got %v", err)
	}
}

func TestConcurrentShowIsSerialized(t *testing.T) {
	fb := &fakeBackend{name: "fake", delay: 5 * time.Millisecond}
	d := newTestDisplayer(t, fb)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.Show(Request{Message: "concurrent", Title: "Error"}); err != nil {
				t.Errorf("Show failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&fb.maxActive); got != 1 {
		t.Errorf("Expected at most one dialog at a time, saw %d", got)
	}
	if len(fb.shownRequests()) != 8 {
		t.Errorf("Expected 8 dialogs, got %d", len(fb.shownRequests()))
	}
}

func TestShowAfterClose(t *testing.T) {
	d := NewDisplayer([]Backend{&fakeBackend{name: "fake"}})
	d.Close()

	err := d.Show(Request{Message: "m", Title: "t"})
	if !errors.Is(err, apperrors.ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
}

func TestShowMessageBoxUsesDefault(t *testing.T) {
	fb := &fakeBackend{name: "fake"}
	d := NewDisplayer([]Backend{fb})
	SetDefault(d)
	t.Cleanup(func() {
		SetDefault(nil)
		d.Close()
	})

	ShowMessageBox("File not found", "Error")
	ShowMessageBox("", "")

	shown := fb.shownRequests()
	if len(shown) != 2 {
		t.Fatalf("Expected two dialogs, got %d", len(shown))
	}
	if shown[0] != (Request{Message: "File not found", Title: "Error"}) {
		t.Errorf("Arguments were swapped or changed: %+v", shown[0])
	}
	if shown[1] != (Request{}) {
		t.Errorf("Expected empty request, got %+v", shown[1])
	}
}

func TestShowMessageBoxSwallowsErrors(t *testing.T) {
	d := NewDisplayer([]Backend{&fakeBackend{name: "fake", displayErr: errors.New("boom")}})
	SetDefault(d)
	t.Cleanup(func() {
		SetDefault(nil)
		d.Close()
	})

	// Must return normally
	ShowMessageBox("m", "t")
}
