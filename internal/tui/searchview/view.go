package searchview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

type Mode int

const (
	ModeInput Mode = iota
	ModeResults
)

// SubmitMsg asks the parent to run a search for Input.
type SubmitMsg struct {
	Input string
}

// OpenMatchMsg asks the parent to open the log of the selected match.
type OpenMatchMsg struct {
	Match model.SearchMatch
	Query string
}

// Model searches every step log of the current job.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	results  *model.SearchResults
	err      error
	mode     Mode
	cursor   int
	width    int
	height   int
	loading  bool
	active   bool
	ready    bool
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search step logs (/re/ for regex, ! for failed steps)"
	ti.CharLimit = 256

	return Model{
		input: ti,
	}
}

func (m *Model) Activate() {
	m.active = true
	m.mode = ModeInput
	m.input.Focus()
}

func (m *Model) Deactivate() {
	m.active = false
	m.input.Blur()
}

func (m Model) IsActive() bool {
	return m.active
}

// IsInputMode returns true while a query is being typed.
func (m Model) IsInputMode() bool {
	return m.mode == ModeInput
}

func (m Model) Query() string {
	return m.input.Value()
}

func (m Model) SelectedMatch() *model.SearchMatch {
	if m.results == nil || m.cursor >= len(m.results.Matches) {
		return nil
	}
	return &m.results.Matches[m.cursor]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.SearchDoneMsg:
		m.loading = false
		m.err = msg.Err
		m.results = msg.Results
		m.cursor = 0
		if msg.Err == nil {
			m.mode = ModeResults
			m.input.Blur()
		}
		m.setContent()

	case tea.KeyMsg:
		if m.mode == ModeInput {
			switch msg.String() {
			case "enter":
				if v := m.input.Value(); v != "" {
					m.loading = true
					return m, func() tea.Msg { return SubmitMsg{Input: v} }
				}
				return m, nil
			case "esc":
				m.Deactivate()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		// Results mode
		switch {
		case key.Matches(msg, ui.Keys.Down):
			if m.results != nil && m.cursor < len(m.results.Matches)-1 {
				m.cursor++
				m.setContent()
			}
			return m, nil
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.setContent()
			}
			return m, nil
		case msg.String() == "enter":
			if match := m.SelectedMatch(); match != nil {
				mm, q := *match, m.results.Query.Pattern
				return m, func() tea.Msg { return OpenMatchMsg{Match: mm, Query: q} }
			}
			return m, nil
		case key.Matches(msg, ui.Keys.Search):
			m.mode = ModeInput
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, ui.Keys.Back):
			m.Deactivate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		h := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.setContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) setContent() {
	if !m.ready {
		return
	}
	content, cursorLine := m.renderResults()
	m.viewport.SetContent(content)
	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

func (m Model) renderResults() (string, int) {
	if m.err != nil {
		return ui.StyleFailure.Render("  " + m.err.Error()), 0
	}
	if m.results == nil {
		return "", 0
	}
	if m.results.TotalCount == 0 {
		return "  No matches", 0
	}

	bold := lipgloss.NewStyle().Bold(true)
	highlight := lipgloss.NewStyle().Background(ui.ColorHighlight)

	var b strings.Builder
	lines := 0
	write := func(s string) {
		b.WriteString(s + "\n")
		lines++
	}
	write(fmt.Sprintf("  %d matches across %d steps", m.results.TotalCount, len(m.results.StepCounts)))
	write(ui.StyleMuted.Render("  enter:view log  j/k:navigate  /:new search  esc:close"))
	write("")

	cursorLine := 0
	currentStep := ""
	for i, match := range m.results.Matches {
		if match.StepID != currentStep {
			currentStep = match.StepID
			write(fmt.Sprintf("  --- %s (%d) ---", bold.Render(match.StepName), m.results.StepCounts[match.StepID]))
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			cursorLine = lines
		}
		line := fmt.Sprintf("%sL%d: %s", cursor, match.Line, match.Content)
		if i == m.cursor {
			line = highlight.Render(line)
		}
		write(line)
	}
	return b.String(), cursorLine
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + m.input.View() + "\n\n")

	if m.loading {
		b.WriteString("  Searching...")
	} else if m.ready {
		b.WriteString(m.viewport.View())
	}
	return b.String()
}
