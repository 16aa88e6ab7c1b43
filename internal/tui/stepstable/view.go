package stepstable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/steps"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

const (
	kindWidth     = 18
	requiredWidth = 10
	installWidth  = 9
)

// Model renders a plan's steps as a table and owns which log panels are
// expanded. Everything else it shows comes in through SetProps and SetJob.
type Model struct {
	props    steps.TableProps
	exp      steps.Expansion
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	ready    bool
}

func New() Model {
	return Model{exp: steps.New()}
}

// SetProps replaces the non-job inputs. The job is kept.
func (m *Model) SetProps(p steps.TableProps) {
	p.Job = m.props.Job
	if p.Steps == nil {
		p.Steps = p.Plan.Steps
	}
	m.props = p
	if m.cursor >= len(p.Steps) {
		m.cursor = max(len(p.Steps)-1, 0)
	}
	m.refresh()
}

// SetJob feeds a new job snapshot through the expansion state. It reports
// whether the panel state changed.
func (m *Model) SetJob(job *model.Job) bool {
	prev := m.props.Job
	m.props.Job = job
	next, changed := m.exp.OnJobUpdate(prev, job)
	if changed {
		m.exp = next
	}
	m.refresh()
	return changed
}

func (m Model) Job() *model.Job {
	return m.props.Job
}

func (m Model) Expansion() steps.Expansion {
	return m.exp
}

func (m Model) Layout() steps.TableLayout {
	return steps.Layout(m.props, m.exp)
}

// SelectedStep returns the step under the cursor, or nil.
func (m Model) SelectedStep() *model.Step {
	if m.cursor >= 0 && m.cursor < len(m.props.Steps) {
		s := m.props.Steps[m.cursor]
		return &s
	}
	return nil
}

// TogglePanel expands or collapses the panel for id. Only steps the job
// runs have panels.
func (m *Model) TogglePanel(id string) {
	if m.props.Job == nil || !slices.Contains(m.props.Job.Steps, id) {
		return
	}
	if next, changed := m.exp.TogglePanel(id, m.props.Job); changed {
		m.exp = next
		m.refresh()
	}
}

// ToggleAllLogs hides every panel when any is open, otherwise shows logs.
func (m *Model) ToggleAllLogs() {
	hide := m.exp.Expanded.Len() > 0
	if next, changed := m.exp.ToggleAllLogs(hide, m.props.Job); changed {
		m.exp = next
		m.refresh()
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < len(m.props.Steps)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, ui.Keys.PageDown):
			m.cursor = min(m.cursor+m.pageSize(), max(len(m.props.Steps)-1, 0))
			m.refresh()
			return m, nil
		case key.Matches(msg, ui.Keys.PageUp):
			m.cursor = max(m.cursor-m.pageSize(), 0)
			m.refresh()
			return m, nil
		case key.Matches(msg, ui.Keys.TogglePanel):
			if s := m.SelectedStep(); s != nil {
				m.TogglePanel(s.ID)
			}
			return m, nil
		case key.Matches(msg, ui.Keys.ToggleLogs):
			m.ToggleAllLogs()
			return m, nil
		case key.Matches(msg, ui.Keys.Select):
			return m, m.toggleSelection()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// one line for the column header
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-1, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-1, 1)
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) pageSize() int {
	return max(m.height-1, 1)
}

func (m Model) toggleSelection() tea.Cmd {
	s := m.SelectedStep()
	if s == nil || m.props.Job != nil {
		return nil
	}
	l := m.Layout()
	if !l.SelectionEnabled || !steps.IsSelectable(*s, m.props.Preflight) {
		return nil
	}
	next := !steps.IsSelected(*s, m.props.Preflight, m.props.Selected)
	id := s.ID
	return func() tea.Msg {
		return ui.StepsChangedMsg{StepID: id, Selected: next}
	}
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	content, top, bottom := m.renderRows(m.Layout())
	m.viewport.SetContent(content)
	// keep the cursor row on screen
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m Model) nameWidth(l steps.TableLayout) int {
	w := m.width - 2 - kindWidth - requiredWidth
	if l.ShowInstallColumn {
		w -= installWidth
	}
	return max(w, 10)
}

func (m Model) renderHeader(l steps.TableLayout) string {
	bold := lipgloss.NewStyle().Bold(true)
	nameW := m.nameWidth(l)

	var name string
	if l.Toggle != nil {
		name = renderToggleLabel(*l.Toggle)
	} else {
		name = l.NameLabel
	}
	line := "  " + cell(bold.Render(name), nameW) +
		cell(bold.Render(steps.LabelType), kindWidth) +
		cell("", requiredWidth)
	if l.ShowInstallColumn {
		line += cell(bold.Render(l.InstallLabel), installWidth)
	}
	return line
}

func renderToggleLabel(t steps.ToggleLabel) string {
	switch {
	case t.LogsExpanded:
		return steps.LabelSteps + ui.StyleMuted.Render("  [l] hide logs")
	case t.HasLogs:
		return steps.LabelSteps + ui.StyleMuted.Render("  [l] show logs")
	default:
		return steps.LabelSteps
	}
}

// renderRows returns the table body plus the first and last line occupied
// by the cursor row and its panel.
func (m Model) renderRows(l steps.TableLayout) (string, int, int) {
	if len(l.Rows) == 0 {
		return "  No steps", 0, 0
	}

	highlight := lipgloss.NewStyle().Background(ui.ColorHighlight)
	nameW := m.nameWidth(l)
	hasJob := m.props.Job != nil

	var lines []string
	top, bottom := 0, 0
	for i, row := range l.Rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			top = len(lines)
		}

		line := cursor +
			cell(renderName(row, hasJob), nameW) +
			cell(ui.StyleMuted.Render(row.Step.Kind), kindWidth) +
			cell(requiredLabel(row.Step, m.props.Preflight), requiredWidth)
		if l.ShowInstallColumn {
			line += cell(renderInstall(row, hasJob), installWidth)
		}
		if i == m.cursor {
			line = highlight.Width(m.width).Render(line)
		}
		lines = append(lines, line)

		if row.Expanded && hasJob {
			lines = append(lines, m.renderPanel(row)...)
		}
		if i == m.cursor {
			bottom = len(lines) - 1
		}
	}
	return strings.Join(lines, "\n"), top, bottom
}

func renderName(row steps.Row, hasJob bool) string {
	if !hasJob {
		return row.Step.Name
	}
	marker := ">"
	if row.Expanded {
		marker = "v"
	}
	icon := ui.StatusIcon(string(row.Result.Status))
	if row.Active {
		icon = ui.StatusIcon("active")
	}
	name := row.Step.Name
	if row.Active {
		name = lipgloss.NewStyle().Bold(true).Render(name)
	}
	return fmt.Sprintf("%s %s %s", ui.StyleMuted.Render(marker), icon, name)
}

func requiredLabel(s model.Step, pf *model.Preflight) string {
	switch pf.StepStatus(s.ID) {
	case model.ResultSkip:
		return ui.StyleMuted.Render("Skipped")
	case model.ResultOptional:
		return "Optional"
	}
	if s.IsRequired {
		return ui.StyleInfo.Render("Required")
	}
	return "Optional"
}

func renderInstall(row steps.Row, hasJob bool) string {
	if hasJob {
		if !row.Selected {
			return ui.StyleMuted.Render("-")
		}
		if row.Active {
			return ui.StyleInfo.Render("running")
		}
		if row.Result.Status == "" {
			return ui.StyleMuted.Render("pending")
		}
		return ui.ResultStyle(string(row.Result.Status)).Render(string(row.Result.Status))
	}
	box := "[ ]"
	if row.Selected {
		box = "[x]"
	}
	if !row.Selectable {
		return ui.StyleMuted.Render(box)
	}
	return box
}

func (m Model) renderPanel(row steps.Row) []string {
	indent := "      "
	width := max(m.width-len(indent)-2, 10)

	body := row.Result.Logs
	if body == "" {
		body = row.Result.Message
	}
	if body == "" {
		placeholder := "No logs for this step."
		if row.Active {
			placeholder = "Waiting for output..."
		}
		return []string{indent + ui.StyleMuted.Render(placeholder)}
	}

	rendered := ui.StyleLogs.Width(width).Render(strings.TrimRight(body, "\n"))
	out := strings.Split(rendered, "\n")
	for i := range out {
		out[i] = indent + out[i]
	}
	return out
}

// cell pads or truncates s to exactly w display columns.
func cell(s string, w int) string {
	if lipgloss.Width(s) > w-1 {
		s = lipgloss.NewStyle().MaxWidth(w - 1).Render(s)
	}
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func (m Model) View() string {
	if len(m.props.Steps) == 0 && m.props.Plan.ID == "" {
		return "\n  Loading plan..."
	}
	l := m.Layout()
	if !m.ready {
		content, _, _ := m.renderRows(l)
		return m.renderHeader(l) + "\n" + content
	}
	return m.renderHeader(l) + "\n" + m.viewport.View()
}

func (m Model) ShortHelp() []key.Binding {
	if m.props.Job != nil {
		return []key.Binding{ui.Keys.TogglePanel, ui.Keys.ToggleLogs, ui.Keys.ViewLog, ui.Keys.Search}
	}
	return []key.Binding{ui.Keys.Select, ui.Keys.Install, ui.Keys.Preflight}
}
