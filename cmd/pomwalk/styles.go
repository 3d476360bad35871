// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/spatialtools/pomwalk/internal/verify"
	"github.com/spatialtools/pomwalk/pkg/walker"
)

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple, used for titles and the tree root.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray, used for secondary text and skipped records.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green, used for added artifacts and passed checks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red, used for errors and failed checks.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber, used for warnings and unresolved records.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue, used for paths and walked descriptors.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// PathStyle is for file paths and configuration keys.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// enumeratorStyle colors the branches of the trace tree.
	enumeratorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginRight(1)
)

// decisionStyle picks the style for a trace decision label.
func decisionStyle(d walker.Decision) lipgloss.Style {
	switch d {
	case walker.DecisionAdded:
		return SuccessStyle
	case walker.DecisionRecursed:
		return PathStyle
	case walker.DecisionUnresolved, walker.DecisionMissing:
		return WarningStyle
	case walker.DecisionExcluded:
		return ErrorStyle
	default:
		return SubtitleStyle
	}
}

// statusStyle picks the style for a verification status label.
func statusStyle(s verify.Status) lipgloss.Style {
	switch s {
	case verify.StatusOK:
		return SuccessStyle
	case verify.StatusFailed:
		return ErrorStyle
	default:
		return SubtitleStyle
	}
}
