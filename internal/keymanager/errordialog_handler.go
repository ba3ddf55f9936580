package keymanager

import (
	"fyne.io/fyne/v2"
)

// Acknowledger is the dialog side of ErrorDialogKeyHandler
type Acknowledger interface {
	Acknowledge()
}

// ErrorDialogKeyHandler maps the usual "OK" keys onto the dialog's single
// acknowledgement control and swallows everything else.
type ErrorDialogKeyHandler struct {
	dialog     Acknowledger
	debugPrint func(format string, args ...interface{})
}

// NewErrorDialogKeyHandler creates a key handler for an error dialog
func NewErrorDialogKeyHandler(d Acknowledger, debugPrint func(format string, args ...interface{})) *ErrorDialogKeyHandler {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &ErrorDialogKeyHandler{
		dialog:     d,
		debugPrint: debugPrint,
	}
}

// GetName returns the name of this handler
func (h *ErrorDialogKeyHandler) GetName() string {
	return "ErrorDialog"
}

// OnTypedKey handles typed key events
func (h *ErrorDialogKeyHandler) OnTypedKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape, fyne.KeySpace:
		h.debugPrint("ErrorDialog: %s detected - acknowledging", ev.Name)
		h.dialog.Acknowledge()
	default:
		h.debugPrint("ErrorDialog: Consuming key event: %s", ev.Name)
	}
	return true
}

// OnTypedRune consumes text input; the dialog has nothing to type into
func (h *ErrorDialogKeyHandler) OnTypedRune(r rune) bool {
	return true
}
