// Package msgbox shows a modal error dialog and blocks until the user
// dismisses it.
//
// ShowMessageBox is the whole public contract: it never reports failure
// and returns only after the dialog has been shown and acknowledged (or
// after it was determined that no toolkit can show it, which is logged).
// Callers that need the failure use Displayer.Show.
//
// Dialogs are serialized through a single UI thread, so concurrent callers
// queue up and see one dialog at a time. A dialog must not request another
// dialog from inside its own backend; that would deadlock the UI thread.
package msgbox

import (
	"log"
	"sync"

	"msgbox/internal/config"
)

// debug hook, set from main; should print only when debug is enabled
var debugf func(format string, args ...interface{})

// SetDebug installs a debug logger.
func SetDebug(fn func(format string, args ...interface{})) { debugf = fn }

func dbg(format string, args ...interface{}) {
	if debugf != nil {
		debugf("msgbox: "+format, args...)
	}
}

// Request is one dialog: a body text and a window title. Both are passed to
// the toolkit unmodified; empty and very long strings are allowed.
type Request struct {
	Message string
	Title   string
}

// Backend is one toolkit able to realize the dialog.
type Backend interface {
	// Name is the config name of the backend, e.g. "native"
	Name() string

	// Init readies the toolkit runtime. It runs at most once per Displayer
	// and its result is cached. Errors wrapping ErrUnavailable mean "skip me".
	Init() error

	// Display shows the dialog and blocks until it is dismissed.
	Display(req Request) error
}

var (
	defaultMu        sync.Mutex
	defaultDisplayer *Displayer
)

// Default returns the process-wide Displayer, built on first use from the
// user's configuration.
func Default() *Displayer {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultDisplayer == nil {
		cfg, err := config.NewManager().Load()
		if err != nil {
			log.Printf("Error loading configuration, using defaults: %v", err)
			cfg = config.Default()
		}
		if cfg.Debug && debugf == nil {
			SetDebug(func(format string, args ...interface{}) {
				log.Printf("DEBUG: "+format, args...)
			})
		}
		defaultDisplayer = NewDisplayer(NewBackends(cfg))
	}
	return defaultDisplayer
}

// SetDefault replaces the process-wide Displayer used by ShowMessageBox.
func SetDefault(d *Displayer) {
	defaultMu.Lock()
	defaultDisplayer = d
	defaultMu.Unlock()
}

// ShowMessageBox displays a modal error dialog with the given message and
// title and returns once the user has dismissed it. Toolkit failures are
// logged, never returned.
func ShowMessageBox(message, title string) {
	if err := Default().Show(Request{Message: message, Title: title}); err != nil {
		log.Printf("Error showing message box %q: %v", title, err)
	}
}
