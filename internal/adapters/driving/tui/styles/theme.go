// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the picker.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Glyph highlights the character column.
	Glyph lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Error:      lipgloss.Color("#F38BA8"), // Red
		Glyph:      lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Title style for the input prompt label.
	Title lipgloss.Style

	// Normal style for regular rows.
	Normal lipgloss.Style

	// Muted style for code points, categories and hints.
	Muted lipgloss.Style

	// Selected style for the highlighted row.
	Selected lipgloss.Style

	// Glyph style for the character column.
	Glyph lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style
}

// DefaultStyles creates styles from the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// NewStyles creates styles from a theme.
func NewStyles(t *Theme) *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(t.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Glyph:    lipgloss.NewStyle().Foreground(t.Glyph),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
	}
}
