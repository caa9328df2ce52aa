// Package ui holds the terminal building blocks shared by the phpgen
// commands: color theme, headless detection, the install spinner and
// markdown rendering.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand colors.
const (
	ColorPrimary   = "#7A86B8"
	ColorSecondary = "#4F5B93"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
)

// Colors is the palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme controls how UI components are styled. With NoColor set every
// component falls back to plain text.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
}

// Style returns a foreground style in color, or a plain style when the
// theme has no color.
func (t *Theme) Style(color string) lipgloss.Style {
	if t == nil || t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
