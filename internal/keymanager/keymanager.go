package keymanager

import (
	"sync"

	"fyne.io/fyne/v2"
)

// KeyHandler defines the interface for handling keyboard events
type KeyHandler interface {
	// OnTypedKey handles typed key events
	OnTypedKey(ev *fyne.KeyEvent) bool // returns true if handled

	// OnTypedRune handles text input
	OnTypedRune(r rune) bool // returns true if handled

	// GetName returns a descriptive name for this handler (for debugging)
	GetName() string
}

// KeyManager manages a stack of key handlers. Only the top handler sees events.
type KeyManager struct {
	handlers   []KeyHandler
	mutex      sync.RWMutex
	debugPrint func(format string, args ...interface{})
}

// NewKeyManager creates a new KeyManager instance
func NewKeyManager(debugPrint func(format string, args ...interface{})) *KeyManager {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &KeyManager{
		handlers:   make([]KeyHandler, 0),
		debugPrint: debugPrint,
	}
}

// PushHandler adds a new key handler to the top of the stack
func (km *KeyManager) PushHandler(handler KeyHandler) {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	km.handlers = append(km.handlers, handler)
	km.debugPrint("KeyManager: Pushed handler '%s', stack size: %d", handler.GetName(), len(km.handlers))
}

// PopHandler removes the top key handler from the stack
func (km *KeyManager) PopHandler() KeyHandler {
	km.mutex.Lock()
	defer km.mutex.Unlock()

	if len(km.handlers) == 0 {
		km.debugPrint("KeyManager: Attempted to pop from empty stack")
		return nil
	}

	handler := km.handlers[len(km.handlers)-1]
	km.handlers = km.handlers[:len(km.handlers)-1]

	km.debugPrint("KeyManager: Popped handler '%s', stack size: %d", handler.GetName(), len(km.handlers))
	return handler
}

// current returns the top handler without removing it
func (km *KeyManager) current() KeyHandler {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	if len(km.handlers) == 0 {
		return nil
	}
	return km.handlers[len(km.handlers)-1]
}

// HandleTypedKey routes typed key events to the current top handler.
// The lock is not held while the handler runs, so a handler may pop itself.
func (km *KeyManager) HandleTypedKey(ev *fyne.KeyEvent) bool {
	handler := km.current()
	if handler == nil {
		km.debugPrint("KeyManager: No handler available for TypedKey %s", ev.Name)
		return false
	}

	handled := handler.OnTypedKey(ev)
	km.debugPrint("KeyManager: TypedKey %s handled by '%s': %t", ev.Name, handler.GetName(), handled)
	return handled
}

// HandleTypedRune routes runes to the current top handler
func (km *KeyManager) HandleTypedRune(r rune) bool {
	handler := km.current()
	if handler == nil {
		return false
	}
	return handler.OnTypedRune(r)
}

// GetStackSize returns the current number of handlers in the stack
func (km *KeyManager) GetStackSize() int {
	km.mutex.RLock()
	defer km.mutex.RUnlock()

	return len(km.handlers)
}
