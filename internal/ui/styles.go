package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleLogs = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB")).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			PaddingLeft(1)
)

// ResultStyle colours a step or job by its reported status.
func ResultStyle(status string) lipgloss.Style {
	switch status {
	case "ok", "complete":
		return StyleSuccess
	case "error", "failed":
		return StyleFailure
	case "warn", "canceled":
		return StyleWarning
	case "skip", "optional":
		return StyleMuted
	default:
		return StyleInfo
	}
}

// StatusIcon returns a one-cell marker for a step result or job status.
func StatusIcon(status string) string {
	switch status {
	case "ok", "complete":
		return StyleSuccess.Render("V")
	case "error", "failed":
		return StyleFailure.Render("X")
	case "warn", "canceled":
		return StyleWarning.Render("!")
	case "skip", "optional":
		return StyleMuted.Render("-")
	case "started", "active":
		return StyleInfo.Render("*")
	case "":
		return StyleMuted.Render("o")
	default:
		return StyleMuted.Render("?")
	}
}
