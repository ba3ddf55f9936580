package theme

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"msgbox/internal/config"
)

// DialogTheme implements fyne.Theme for the error window. It pins the
// variant chosen in config and optionally swaps in a font file.
type DialogTheme struct {
	config     config.ThemeConfig
	customFont fyne.Resource
}

var _ fyne.Theme = (*DialogTheme)(nil)

// NewDialogTheme creates a theme from the theme section of the configuration
func NewDialogTheme(cfg config.ThemeConfig) *DialogTheme {
	t := &DialogTheme{config: cfg}

	if cfg.FontPath != "" {
		t.loadCustomFont()
	}

	return t
}

// loadCustomFont loads a font file; failures fall back to the bundled font
func (t *DialogTheme) loadCustomFont() {
	fontPath := t.config.FontPath

	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("Error reading font file %s: %v", fontPath, err)
		return
	}

	t.customFont = fyne.NewStaticResource(filepath.Base(fontPath), fontData)
	log.Printf("Loaded custom font: %s", fontPath)
}

// variant ignores the system preference in favour of the configured one
func (t *DialogTheme) variant() fyne.ThemeVariant {
	if t.config.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns the default palette for the configured variant
func (t *DialogTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant())
}

// Icon returns the default icon set
func (t *DialogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Font returns the custom font when one was loaded
func (t *DialogTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.customFont != nil {
		return t.customFont
	}
	return theme.DefaultTheme().Font(style)
}

// Size applies the configured text size
func (t *DialogTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.FontSize > 0 {
		return float32(t.config.FontSize)
	}
	return theme.DefaultTheme().Size(name)
}
