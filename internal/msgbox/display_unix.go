//go:build !windows && !darwin

package msgbox

// displayAvailable reports whether an X11 or Wayland server is advertised.
// GTK aborts the process when it cannot open a display, so check first.
func displayAvailable(getenv func(string) string, backend string) error {
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return unavailable(backend, "neither DISPLAY nor WAYLAND_DISPLAY is set")
	}
	return nil
}
