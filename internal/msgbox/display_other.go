//go:build windows || darwin

package msgbox

// displayAvailable always succeeds; the desktop is part of the OS here
func displayAvailable(getenv func(string) string, backend string) error {
	return nil
}
