package msgbox

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"msgbox/internal/config"
	"msgbox/internal/constants"
	customtheme "msgbox/internal/theme"
	"msgbox/internal/ui"
)

// FyneBackend draws the dialog as a fyne window. Fyne owns its event loop
// and must run it on the main thread, so this backend only works while
// Run is executing somewhere; Display posts the window onto that loop and
// waits for it to be dismissed.
type FyneBackend struct {
	cfg *config.Config

	mu       sync.Mutex
	app      fyne.App
	started  chan struct{}
	stopped  chan struct{}
	running  bool
	onWindow func(*ui.ErrorWindow) // test hook, runs on the fyne thread
}

// NewFyneBackend creates a backend whose app is created on first use
func NewFyneBackend(cfg *config.Config) *FyneBackend {
	return &FyneBackend{
		cfg:     cfg,
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// NewFyneBackendWithApp creates a backend for an app the host already owns.
// The host must call MarkStarted once that app's loop is running.
func NewFyneBackendWithApp(a fyne.App, cfg *config.Config) *FyneBackend {
	b := NewFyneBackend(cfg)
	b.app = a
	return b
}

func (b *FyneBackend) Name() string { return constants.BackendFyne }

// CanHost reports whether the event loop has a display to run on. Without
// one glfw fails to initialise and the loop never starts.
func (b *FyneBackend) CanHost(getenv func(string) string) error {
	return displayAvailable(getenv, b.Name())
}

// App returns the fyne application, creating it with the dialog theme
func (b *FyneBackend) App() fyne.App {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.app == nil {
		b.app = app.NewWithID(constants.ApplicationID)
		b.app.Settings().SetTheme(customtheme.NewDialogTheme(b.cfg.Theme))
	}
	return b.app
}

// Run runs the fyne event loop on the calling goroutine until Quit. Call it
// from main.
func (b *FyneBackend) Run() {
	a := b.App()
	a.Lifecycle().SetOnStarted(b.MarkStarted)
	a.Lifecycle().SetOnStopped(b.markStopped)

	// The loop ends when its last window closes; this one is never shown
	// so it outlives every dialog
	a.NewWindow(constants.ApplicationName)

	a.Run()
	b.markStopped()
}

// Quit stops the event loop started by Run
func (b *FyneBackend) Quit() {
	b.App().Quit()
}

// Started is closed once the event loop is running
func (b *FyneBackend) Started() <-chan struct{} {
	return b.started
}

// Stopped is closed once the event loop has ended, or failed to start
func (b *FyneBackend) Stopped() <-chan struct{} {
	return b.stopped
}

// MarkStarted records that the app's loop is running
func (b *FyneBackend) MarkStarted() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return
	}
	b.running = true
	close(b.started)
	dbg("fyne: event loop started")
}

func (b *FyneBackend) markStopped() {
	b.mu.Lock()
	defer b.mu.Unlock()
	select {
	case <-b.stopped:
		return
	default:
	}
	b.running = false
	close(b.stopped)
	dbg("fyne: event loop stopped")
}

func (b *FyneBackend) isRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

func (b *FyneBackend) Init() error {
	if !b.isRunning() {
		return unavailable(b.Name(), "fyne event loop is not running")
	}
	return nil
}

// Display builds the window on the fyne thread and blocks until it closes
func (b *FyneBackend) Display(req Request) error {
	if !b.isRunning() {
		return unavailable(b.Name(), "fyne event loop is not running")
	}

	done := make(chan struct{})
	size := fyne.NewSize(float32(b.cfg.Window.Width), float32(b.cfg.Window.Height))

	b.app.Driver().DoFromGoroutine(func() {
		w := ui.NewErrorWindow(b.app, req.Title, req.Message, size, debugf, func() { close(done) })
		w.Show()
		if b.onWindow != nil {
			b.onWindow(w)
		}
	}, false)

	select {
	case <-done:
		return nil
	case <-b.stopped:
		return fmt.Errorf("fyne event loop stopped before %q was dismissed", req.Title)
	}
}
