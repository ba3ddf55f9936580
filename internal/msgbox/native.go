//go:build cgo || windows

package msgbox

import (
	"os"

	"github.com/sqweek/dialog"

	"msgbox/internal/constants"
)

// NativeBackend uses the platform dialog: a GTK3 message dialog on Linux
// and BSD, MessageBoxW on Windows, NSAlert on macOS.
type NativeBackend struct {
	getenv func(string) string
}

// NewNativeBackend creates the platform dialog backend
func NewNativeBackend() *NativeBackend {
	return &NativeBackend{getenv: os.Getenv}
}

func (b *NativeBackend) Name() string { return constants.BackendNative }

func (b *NativeBackend) Init() error {
	return displayAvailable(b.getenv, b.Name())
}

// Display blocks inside the toolkit's own modal loop until OK or close.
// The message always goes through "%s" so it is never parsed as a format.
func (b *NativeBackend) Display(req Request) error {
	dialog.Message("%s", req.Message).Title(req.Title).Error()
	return nil
}
