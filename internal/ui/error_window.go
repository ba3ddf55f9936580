package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"msgbox/internal/constants"
	"msgbox/internal/keymanager"
)

// ErrorWindow is a standalone window showing one error message and a
// single acknowledgement button. The OK button, the window close button
// and Enter/Escape/Space all end up in Acknowledge.
type ErrorWindow struct {
	window     fyne.Window
	keyManager *keymanager.KeyManager
	debugPrint func(format string, args ...interface{})
	message    *widget.Label
	okButton   *widget.Button
	onClosed   func()

	mu     sync.Mutex
	closed bool // Prevent double-close
}

// NewErrorWindow builds the window but does not show it. onClosed runs
// exactly once, after the window has been closed.
func NewErrorWindow(app fyne.App, title, message string, size fyne.Size, debugPrint func(format string, args ...interface{}), onClosed func()) *ErrorWindow {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	ew := &ErrorWindow{
		window:     app.NewWindow(title),
		keyManager: keymanager.NewKeyManager(debugPrint),
		debugPrint: debugPrint,
		onClosed:   onClosed,
	}
	ew.keyManager.PushHandler(keymanager.NewErrorDialogKeyHandler(ew, debugPrint))

	ew.setupUI(message, size)
	return ew
}

func (ew *ErrorWindow) setupUI(message string, size fyne.Size) {
	// Label renders text as-is; no markup or format directives are interpreted
	ew.message = widget.NewLabel(message)
	ew.message.Wrapping = fyne.TextWrapWord

	scroll := container.NewVScroll(ew.message)
	scroll.SetMinSize(fyne.NewSize(size.Width, min(size.Height, constants.MaxMessageHeight)/2))

	icon := widget.NewIcon(theme.ErrorIcon())
	iconBox := container.NewVBox(container.NewGridWrap(fyne.NewSquareSize(theme.IconInlineSize()*2), icon))

	ew.okButton = widget.NewButton(constants.AcknowledgeLabel, ew.Acknowledge)
	ew.okButton.Importance = widget.HighImportance

	content := container.NewBorder(
		nil,
		container.NewCenter(ew.okButton),
		iconBox,
		nil,
		scroll,
	)

	ew.window.SetContent(container.NewPadded(content))
	ew.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) { ew.keyManager.HandleTypedKey(ev) })
	ew.window.Canvas().SetOnTypedRune(func(r rune) { ew.keyManager.HandleTypedRune(r) })
	ew.window.SetCloseIntercept(ew.Acknowledge)
	ew.window.Resize(size)
	ew.window.CenterOnScreen()
}

// Show makes the window and all its controls visible
func (ew *ErrorWindow) Show() {
	ew.window.Show()
	ew.window.RequestFocus()
}

// Acknowledge closes the window and fires onClosed. Later calls are no-ops.
func (ew *ErrorWindow) Acknowledge() {
	ew.mu.Lock()
	if ew.closed {
		ew.mu.Unlock()
		return
	}
	ew.closed = true
	ew.mu.Unlock()

	ew.debugPrint("ErrorWindow: acknowledged '%s'", ew.window.Title())

	ew.keyManager.PopHandler()
	ew.window.Close()

	if ew.onClosed != nil {
		ew.onClosed()
	}
}

// Closed reports whether the window has been dismissed
func (ew *ErrorWindow) Closed() bool {
	ew.mu.Lock()
	defer ew.mu.Unlock()
	return ew.closed
}
