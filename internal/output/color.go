// Package output provides styled terminal rendering helpers for touchline.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#4db6ac")

	// ColorSuccess is used for strong scores and positive links.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for weak scores and critical items.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for caution indicators.
	ColorWarning = lipgloss.Color("#ffca28")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleGood   = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleBad    = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold   = lipgloss.NewStyle().Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally. When disabled, all
// package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleBad = plain
		StyleWarn = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoDetect disables color when stdout is not a terminal.
func AutoDetect() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}

// PriorityStyle picks the style for a wire-format priority name.
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "critical":
		return StyleBad
	case "high":
		return StyleWarn
	case "medium":
		return StyleHeader
	default:
		return StyleMuted
	}
}
