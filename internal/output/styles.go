package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, commands.
	ColorCyan = lipgloss.Color("14")

	// ColorRed is used for validation failures.
	ColorRed = lipgloss.Color("196")

	// ColorYellow is used for warnings that still block project creation.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for descriptions and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, commands).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleMuted styles file descriptions in trees.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleError styles error reasons.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleWarning styles warning reasons.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatBullet renders a "  *  reason" line in the given style.
func FormatBullet(style lipgloss.Style, reason string) string {
	return style.Render("  *  " + reason)
}
