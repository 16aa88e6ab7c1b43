package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

// RenderHeader shows the plan title on the left and who is signed in plus
// the state of the job feed on the right.
func RenderHeader(planTitle string, user *model.User, feed string, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" metadeploy | %s", planTitle))

	who := "not logged in"
	color := ui.ColorMuted
	if user != nil {
		who = user.Username
		color = ui.ColorWarning
		if user.HasValidToken() {
			who = fmt.Sprintf("%s @ %s", user.Username, *user.ValidTokenFor)
			color = ui.ColorSuccess
		}
	}
	right := lipgloss.NewStyle().Foreground(color).Render(who)
	if feed != "" {
		right += ui.StyleMuted.Render("  " + feed)
	}
	right += " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding + right)
}
