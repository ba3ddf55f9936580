package msgbox

import (
	"fmt"
	"log"
	"os"

	"msgbox/internal/config"
	"msgbox/internal/constants"
	apperrors "msgbox/internal/errors"
)

// NewBackends builds the backends named in cfg.Backend.Order, in order.
// Unknown names are logged and skipped.
func NewBackends(cfg *config.Config) []Backend {
	backends := make([]Backend, 0, len(cfg.Backend.Order))
	for _, name := range cfg.Backend.Order {
		switch name {
		case constants.BackendNative:
			backends = append(backends, NewNativeBackend())
		case constants.BackendFyne:
			backends = append(backends, NewFyneBackend(cfg))
		case constants.BackendZenity:
			backends = append(backends, NewZenityBackend(cfg.Backend.ZenityTools))
		case constants.BackendTerminal:
			backends = append(backends, NewTerminalBackend(os.Stdin, os.Stdout))
		default:
			log.Printf("Unknown dialog backend %q ignored", name)
		}
	}
	return backends
}

// unavailable wraps ErrUnavailable with a reason
func unavailable(backend, format string, args ...interface{}) error {
	return apperrors.NewToolkitError("init", backend, fmt.Sprintf(format, args...), apperrors.ErrUnavailable)
}
