package styles

import (
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/nixpm/internal/config"
)

// Theme defines the color palette for doctor and config output
type Theme struct {
	Primary color.Color // headers and section titles
	Success color.Color // passing checks
	Warning color.Color // warnings
	Error   color.Color // failing checks
	Muted   color.Color // details and hints
}

// Preset themes
var (
	// DefaultTheme is the default color scheme
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Success: lipgloss.Color("82"),  // green
		Warning: lipgloss.Color("214"), // orange
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("244"), // gray
	}

	// DraculaTheme is based on the Dracula color scheme
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Success: lipgloss.Color("#50fa7b"), // green
		Warning: lipgloss.Color("#ffb86c"), // orange
		Error:   lipgloss.Color("#ff5555"), // red
		Muted:   lipgloss.Color("#6272a4"), // comment
	}

	// NordTheme is based on the Nord color scheme
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Success: lipgloss.Color("#a3be8c"), // nord14
		Warning: lipgloss.Color("#ebcb8b"), // nord13
		Error:   lipgloss.Color("#bf616a"), // nord11
		Muted:   lipgloss.Color("#4c566a"), // nord3
	}

	// NoneTheme renders without colors. Bold is preserved.
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var presets = map[string]*Theme{
	"default": &DefaultTheme,
	"dracula": &DraculaTheme,
	"nord":    &NordTheme,
	"none":    &NoneTheme,
}

var currentTheme = DefaultTheme

// Current returns the active theme
func Current() Theme {
	return currentTheme
}

// Init selects the theme named in cfg and updates the global styles.
// Unknown or empty names fall back to the default theme; config validation
// rejects unknown names before this is reached.
func Init(cfg config.ThemeConfig) {
	theme := DefaultTheme
	if preset := GetPreset(cfg.Name); preset != nil {
		theme = *preset
	}
	currentTheme = theme
	applyTheme(theme)
}

func applyTheme(t Theme) {
	HeaderStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}

// GetPreset returns a theme preset by name, or nil if not found
func GetPreset(name string) *Theme {
	return presets[name]
}

// PresetNames returns the available preset names
func PresetNames() []string {
	return slices.Clone(config.ValidThemeNames)
}
