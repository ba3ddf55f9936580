package constants

// Application constants
const (
	ApplicationName = "msgbox"
	ApplicationID   = "io.github.msgbox"
)

// Backend names as used in config and on the command line
const (
	BackendNative   = "native"
	BackendFyne     = "fyne"
	BackendZenity   = "zenity"
	BackendTerminal = "terminal"
)

// Dialog constants
const (
	// Label of the single acknowledgement control
	AcknowledgeLabel = "OK"

	// Title used by the command line when none is given
	DefaultTitle = "Error"

	// Error window dimensions
	DefaultWindowWidth  = 420
	DefaultWindowHeight = 180

	// Message area grows up to this height, then scrolls
	MaxMessageHeight = 320
)

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// Configuration constants
const (
	ConfigFileName = "config.json"
	ConfigVendor   = "msgbox"

	// Environment overrides
	EnvBackend = "MSGBOX_BACKEND"
	EnvDebug   = "MSGBOX_DEBUG"
)

// DefaultBackendOrder is the fallback order when nothing is configured.
var DefaultBackendOrder = []string{BackendNative, BackendFyne, BackendZenity, BackendTerminal}

// DefaultZenityTools are zenity-compatible helpers probed on PATH.
var DefaultZenityTools = []string{"zenity", "qarma", "matedialog"}
