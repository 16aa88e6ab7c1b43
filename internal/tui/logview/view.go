package logview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

// Model shows the full log of one step, with in-log search. While the step
// is the job's running step the view follows new output.
type Model struct {
	viewport viewport.Model
	stepID   string
	stepName string
	result   model.StepResult
	width    int
	height   int
	ready    bool

	searchInput textinput.Model
	searching   bool
	query       string
	matches     []int // 0-based line indices
	matchIndex  int

	live bool
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search in log..."
	ti.CharLimit = 256
	return Model{searchInput: ti}
}

// Open shows a step's log from the top, clearing any previous search.
func (m *Model) Open(step model.Step, result model.StepResult, live bool) {
	m.stepID = step.ID
	m.stepName = step.Name
	m.result = result
	m.live = live
	m.query = ""
	m.matches = nil
	m.matchIndex = 0
	if m.ready {
		m.viewport.SetContent(m.render())
		if live {
			m.viewport.GotoBottom()
		} else {
			m.viewport.GotoTop()
		}
	}
}

// StepID returns the step being shown, or "" when closed.
func (m Model) StepID() string {
	return m.stepID
}

func (m *Model) Close() {
	m.stepID = ""
	m.live = false
	m.searching = false
	m.searchInput.Blur()
}

func (m Model) IsOpen() bool {
	return m.stepID != ""
}

// Refresh replaces the shown result. A view scrolled to the bottom stays
// there; otherwise the scroll position is kept.
func (m *Model) Refresh(result model.StepResult, live bool) {
	m.result = result
	m.live = live
	if m.query != "" {
		m.matches = matchingLines(m.body(), m.query)
		if m.matchIndex >= len(m.matches) {
			m.matchIndex = 0
		}
	}
	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	prevOffset := m.viewport.YOffset
	m.viewport.SetContent(m.render())
	if wasAtBottom {
		m.viewport.GotoBottom()
		return
	}
	maxOffset := max(m.viewport.TotalLineCount()-m.viewport.VisibleLineCount(), 0)
	m.viewport.SetYOffset(min(prevOffset, maxOffset))
}

func (m Model) IsSearching() bool {
	return m.searching
}

func (m Model) IsLive() bool {
	return m.live
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.query = m.searchInput.Value()
				m.matches = matchingLines(m.body(), m.query)
				m.matchIndex = 0
				m.searching = false
				m.searchInput.Blur()
				m.jumpToMatch()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.searchInput.SetValue("")
			m.searchInput.Focus()
			return m, textinput.Blink
		case "n":
			if len(m.matches) > 0 {
				m.matchIndex = (m.matchIndex + 1) % len(m.matches)
				m.jumpToMatch()
			}
			return m, nil
		case "N":
			if len(m.matches) > 0 {
				m.matchIndex = (m.matchIndex - 1 + len(m.matches)) % len(m.matches)
				m.jumpToMatch()
			}
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := max(msg.Height-2, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.viewport.SetContent(m.render())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ShowMatch highlights query and scrolls to the given 1-based line.
func (m *Model) ShowMatch(query string, line int) {
	m.query = query
	m.matches = matchingLines(m.body(), query)
	m.matchIndex = 0
	for i, idx := range m.matches {
		if idx == line-1 {
			m.matchIndex = i
			break
		}
	}
	m.jumpToMatch()
}

func (m *Model) jumpToMatch() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())
	if len(m.matches) > 0 {
		m.viewport.SetYOffset(m.matches[m.matchIndex])
	}
}

func (m Model) body() string {
	if m.result.Logs != "" {
		return m.result.Logs
	}
	return m.result.Message
}

// matchingLines returns the 0-based indices of lines containing query,
// ignoring case.
func matchingLines(content, query string) []int {
	if query == "" || content == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []int
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(strings.ToLower(line), q) {
			out = append(out, i)
		}
	}
	return out
}

func (m Model) render() string {
	body := m.body()
	if body == "" {
		return ui.StyleMuted.Render("  No logs for this step.")
	}
	if len(m.matches) == 0 {
		return body
	}

	hit := lipgloss.NewStyle().Background(ui.ColorBorder)
	current := lipgloss.NewStyle().Background(lipgloss.Color("#92400E")).Bold(true)
	lines := strings.Split(body, "\n")
	for n, idx := range m.matches {
		if idx >= len(lines) {
			continue
		}
		if n == m.matchIndex {
			lines[idx] = current.Render(lines[idx])
		} else {
			lines[idx] = hit.Render(lines[idx])
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	if !m.IsOpen() {
		return "\n  Select a step to view its log"
	}

	title := fmt.Sprintf(" %s %s", ui.StatusIcon(string(m.result.Status)), m.stepName)
	if m.live {
		title += ui.StyleSuccess.Bold(true).Render(" [LIVE]")
	}
	if m.ready {
		title += fmt.Sprintf("  %3.f%%", m.viewport.ScrollPercent()*100)
	}
	switch {
	case m.query != "" && len(m.matches) > 0:
		title += fmt.Sprintf("  [%d/%d matches]", m.matchIndex+1, len(m.matches))
	case m.query != "":
		title += "  [no matches]"
	}
	header := lipgloss.NewStyle().Bold(true).Render(title) +
		ui.StyleMuted.Render("  /:search  n/N:match  g/G:top/bot  esc:back")

	second := ""
	if m.searching {
		second = "  /" + m.searchInput.View()
	} else if m.result.Message != "" && m.result.Logs != "" {
		second = "  " + ui.ResultStyle(string(m.result.Status)).Render(m.result.Message)
	}

	body := m.render()
	if m.ready {
		body = m.viewport.View()
	}
	return header + "\n" + second + "\n" + body
}
