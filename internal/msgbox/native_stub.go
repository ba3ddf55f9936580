//go:build !cgo && !windows

package msgbox

import "msgbox/internal/constants"

// NativeBackend is unavailable in builds without cgo
type NativeBackend struct{}

// NewNativeBackend creates the platform dialog backend
func NewNativeBackend() *NativeBackend { return &NativeBackend{} }

func (b *NativeBackend) Name() string { return constants.BackendNative }

func (b *NativeBackend) Init() error {
	return unavailable(b.Name(), "built without cgo")
}

func (b *NativeBackend) Display(req Request) error {
	return unavailable(b.Name(), "built without cgo")
}
