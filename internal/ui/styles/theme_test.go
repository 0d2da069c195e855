package styles

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/nixpm/internal/config"
)

func TestInit_DefaultTheme(t *testing.T) {
	Init(config.ThemeConfig{})

	if got := Current().Success; got != lipgloss.Color("82") {
		t.Errorf("default success color = %v, want 82", got)
	}
}

func TestInit_PresetTheme(t *testing.T) {
	tests := []struct {
		preset string
		want   Theme
	}{
		{"default", DefaultTheme},
		{"dracula", DraculaTheme},
		{"nord", NordTheme},
		{"none", NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			Init(config.ThemeConfig{Name: tt.preset})
			if got := Current(); got != tt.want {
				t.Errorf("Current() = %+v, want %+v", got, tt.want)
			}
		})
	}

	Init(config.ThemeConfig{})
}

func TestInit_UnknownFallsBack(t *testing.T) {
	Init(config.ThemeConfig{Name: "solarized"})
	defer Init(config.ThemeConfig{})

	if got := Current(); got != DefaultTheme {
		t.Errorf("Current() = %+v, want default theme", got)
	}
}

func TestInit_UpdatesStyles(t *testing.T) {
	Init(config.ThemeConfig{Name: "nord"})
	defer Init(config.ThemeConfig{})

	if got := ErrorStyle.GetForeground(); got != NordTheme.Error {
		t.Errorf("ErrorStyle foreground = %v, want %v", got, NordTheme.Error)
	}
	if !HeaderStyle.GetBold() {
		t.Error("HeaderStyle should stay bold")
	}
}

func TestPresetNames(t *testing.T) {
	for _, name := range PresetNames() {
		if GetPreset(name) == nil {
			t.Errorf("GetPreset(%q) = nil, want a theme", name)
		}
	}
	if GetPreset("missing") != nil {
		t.Error("GetPreset(missing) should be nil")
	}
}
