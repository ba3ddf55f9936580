package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"msgbox/internal/constants"
	apperrors "msgbox/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Backend BackendConfig `json:"backend"`
	Window  WindowConfig  `json:"window"`
	Theme   ThemeConfig   `json:"theme"`
	Debug   bool          `json:"debug"`
}

// BackendConfig selects which toolkits may show the dialog
type BackendConfig struct {
	Order       []string `json:"order"`       // "native", "fyne", "zenity", "terminal"
	ZenityTools []string `json:"zenityTools"` // zenity-compatible executables, probed in order
}

// WindowConfig represents the fyne error window size
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ThemeConfig represents theme-related settings
type ThemeConfig struct {
	Dark     bool   `json:"dark"`
	FontSize int    `json:"fontSize"`
	FontPath string `json:"fontPath"`
}

// Manager provides configuration management functionality
type Manager struct {
	configPath string
	getenv     func(string) string
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		configPath: getConfigPath(),
		getenv:     os.Getenv,
	}
}

// Path returns the file the manager reads and writes
func (m *Manager) Path() string {
	return m.configPath
}

// Load loads configuration from file, merges it with defaults and applies
// environment overrides
func (m *Manager) Load() (*Config, error) {
	config := getDefaultConfig()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	} else {
		var fileConfig Config
		if err := json.Unmarshal(data, &fileConfig); err != nil {
			return nil, apperrors.NewConfigError("load", fmt.Sprintf("error parsing %s", m.configPath), err)
		}
		mergeConfigs(config, &fileConfig)
	}

	applyEnv(config, m.getenv)
	return config, nil
}

// Save saves configuration to file
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return apperrors.NewConfigError("save", "error creating config directory", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return apperrors.NewConfigError("save", "error marshaling config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return apperrors.NewConfigError("save", "error writing config file", err)
	}

	return nil
}

// Default returns the built-in configuration
func Default() *Config {
	return getDefaultConfig()
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			Order:       append([]string(nil), constants.DefaultBackendOrder...),
			ZenityTools: append([]string(nil), constants.DefaultZenityTools...),
		},
		Window: WindowConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
		Theme: ThemeConfig{
			Dark:     constants.DarkThemeDefault,
			FontSize: constants.DefaultFontSize,
			FontPath: "",
		},
		Debug: false,
	}
}

// getConfigPath returns the path to the configuration file following OS conventions
func getConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\msgbox\config.json
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, constants.ConfigVendor)

	case "darwin":
		// macOS: ~/Library/Application Support/msgbox/config.json
		home, err := os.UserHomeDir()
		if err != nil {
			return constants.ConfigFileName
		}
		configDir = filepath.Join(home, "Library", "Application Support", constants.ConfigVendor)

	default:
		// Linux/Unix: $XDG_CONFIG_HOME/msgbox/config.json or ~/.config/msgbox/config.json
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return constants.ConfigFileName
			}
			xdgConfigHome = filepath.Join(home, ".config")
		}
		configDir = filepath.Join(xdgConfigHome, constants.ConfigVendor)
	}

	return filepath.Join(configDir, constants.ConfigFileName)
}

// mergeConfigs merges file config values into default config
func mergeConfigs(defaultConfig *Config, fileConfig *Config) {
	if len(fileConfig.Backend.Order) > 0 {
		defaultConfig.Backend.Order = normalizeOrder(fileConfig.Backend.Order)
	}
	if len(fileConfig.Backend.ZenityTools) > 0 {
		defaultConfig.Backend.ZenityTools = fileConfig.Backend.ZenityTools
	}

	if fileConfig.Window.Width != 0 {
		defaultConfig.Window.Width = fileConfig.Window.Width
	}
	if fileConfig.Window.Height != 0 {
		defaultConfig.Window.Height = fileConfig.Window.Height
	}

	// Note: for bool values, we can't distinguish between false and unset, so we always use file value
	defaultConfig.Theme.Dark = fileConfig.Theme.Dark
	if fileConfig.Theme.FontSize != 0 {
		defaultConfig.Theme.FontSize = fileConfig.Theme.FontSize
	}
	if fileConfig.Theme.FontPath != "" {
		defaultConfig.Theme.FontPath = fileConfig.Theme.FontPath
	}

	defaultConfig.Debug = fileConfig.Debug
}

// applyEnv applies MSGBOX_BACKEND and MSGBOX_DEBUG on top of the file values
func applyEnv(config *Config, getenv func(string) string) {
	if v := getenv(constants.EnvBackend); v != "" {
		if order := ParseBackendList(v); len(order) > 0 {
			config.Backend.Order = order
		}
	}
	if v := getenv(constants.EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			config.Debug = debug
		}
	}
}

// ParseBackendList splits a comma separated backend list, e.g. "zenity, terminal"
func ParseBackendList(value string) []string {
	return normalizeOrder(strings.Split(value, ","))
}

// normalizeOrder lowercases names and drops blanks and duplicates
func normalizeOrder(names []string) []string {
	seen := make(map[string]bool, len(names))
	order := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	return order
}
