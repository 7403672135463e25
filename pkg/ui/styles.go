package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verdictsh/verdict/pkg/severity"
)

// Color palette for the frontend chrome. The streaming renderer uses
// raw ANSI for its per-line output; lipgloss is reserved for the
// banner and run-level framing.
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4")
	Secondary = lipgloss.Color("#00D4AA")

	// Severity colors
	CriticalColor = lipgloss.Color("#FF0000")
	MajorColor    = lipgloss.Color("#FF6B6B")
	MinorColor    = lipgloss.Color("#FFD93D")
	FailedColor   = lipgloss.Color("#FF3838")
	SkippedColor  = lipgloss.Color("#FFB800")
	PassedColor   = lipgloss.Color("#00D26A")
	Muted         = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(12)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))
)

// SeverityStyle returns the style for a severity tier.
func SeverityStyle(sev severity.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch sev {
	case severity.Critical:
		return base.Foreground(CriticalColor)
	case severity.Major:
		return base.Foreground(MajorColor)
	case severity.Minor:
		return base.Foreground(MinorColor)
	case severity.Failed:
		return base.Foreground(FailedColor)
	case severity.Skipped:
		return base.Foreground(SkippedColor)
	case severity.Passed:
		return base.Foreground(PassedColor)
	default:
		return base.Foreground(Muted)
	}
}
