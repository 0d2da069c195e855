// Package styles provides shared lipgloss styles for nixpm output.
//
// Colors come from the active [Theme], selected with [Init] from the
// [theme] config section. Whether escape sequences reach the terminal is
// decided by the output writer, not here.
package styles

import "charm.land/lipgloss/v2"

// Common styles, updated by Init
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// HeaderStyle is used for the "==>" banner and section titles
	HeaderStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Primary).Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Success)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Warning)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)
)
