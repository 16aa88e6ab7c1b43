package confirm

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

type Action string

const (
	ActionInstall   Action = "install"
	ActionPreflight Action = "preflight"
)

type ResultMsg struct {
	Confirmed bool
	Action    Action
	PlanID    string
	StepIDs   []string
}

// Model asks before starting work against the user's org.
type Model struct {
	Title   string
	Message string
	Action  Action
	PlanID  string
	StepIDs []string
	active  bool
	yes     bool
}

// NewInstall asks to install the given steps of a plan.
func NewInstall(planTitle, planID string, stepNames, stepIDs []string, org string) Model {
	msg := fmt.Sprintf("Install %d step(s) of %q", len(stepIDs), planTitle)
	if org != "" {
		msg += fmt.Sprintf(" into %s", org)
	}
	msg += "?\n\n  " + strings.Join(stepNames, "\n  ")
	return Model{
		Title:   "Start installation",
		Message: msg,
		Action:  ActionInstall,
		PlanID:  planID,
		StepIDs: stepIDs,
		active:  true,
	}
}

// NewPreflight asks to run the plan's preflight checks.
func NewPreflight(planTitle, planID, message string) Model {
	msg := fmt.Sprintf("Run pre-install validation for %q?", planTitle)
	if message != "" {
		msg += "\n\n" + message
	}
	return Model{
		Title:   "Run preflight",
		Message: msg,
		Action:  ActionPreflight,
		PlanID:  planID,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) result(confirmed bool) tea.Cmd {
	r := ResultMsg{Confirmed: confirmed, Action: m.Action, PlanID: m.PlanID, StepIDs: m.StepIDs}
	return func() tea.Msg { return r }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.active = false
			return m, m.result(true)
		case "n", "N", "esc":
			m.active = false
			return m, m.result(false)
		case "enter":
			m.active = false
			return m, m.result(m.yes)
		case "tab", "left", "right", "h", "l":
			m.yes = !m.yes
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(60)

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWarning).Render(m.Title)

	yes := lipgloss.NewStyle().Padding(0, 1)
	no := lipgloss.NewStyle().Padding(0, 1)
	if m.yes {
		yes = yes.Bold(true).Background(ui.ColorSuccess).Foreground(lipgloss.Color("#F9FAFB"))
		no = no.Foreground(ui.ColorMuted)
	} else {
		yes = yes.Foreground(ui.ColorMuted)
		no = no.Bold(true).Background(ui.ColorFailure).Foreground(lipgloss.Color("#F9FAFB"))
	}

	content := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, m.Message, yes.Render("Yes"), no.Render("No"))
	return style.Render(content)
}
