// SPDX-License-Identifier: MPL-2.0

package app

import "github.com/charmbracelet/lipgloss"

// Color palette and reusable styles for CLI output.
var (
	// ColorError is red - used for errors, failures, and negative outcomes.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber - used for warnings and attention-needed items.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorMuted is gray - used for secondary, de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)
	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
	// HintStyle is for usage hints and supplementary information.
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
