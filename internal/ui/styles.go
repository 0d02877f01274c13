package ui

import (
	"drugdiscovery/internal/analysis"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	colorGreen   = lipgloss.Color("#4ADE80")
	colorYellow  = lipgloss.Color("#FACC15")
	colorOrange  = lipgloss.Color("#FB923C")
	colorRed     = lipgloss.Color("#F87171")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	codeStyle     = lipgloss.NewStyle().Foreground(colorPrimary)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

func tierColor(t analysis.Tier) lipgloss.TerminalColor {
	switch t {
	case analysis.TierHigh:
		return colorGreen
	case analysis.TierMedium:
		return colorYellow
	default:
		return colorOrange
	}
}
