package stepstable

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
	"github.com/sfdo-tooling/metadeploy-tui/internal/steps"
	"github.com/sfdo-tooling/metadeploy-tui/internal/ui"
)

func testPlan() model.Plan {
	return model.Plan{
		ID:    "plan-1",
		Title: "Sample plan",
		Steps: []model.Step{
			{ID: "s1", Name: "Install base package", Kind: "Managed Package", IsRequired: true},
			{ID: "s2", Name: "Deploy metadata", Kind: "Metadata", IsRecommended: true},
			{ID: "s3", Name: "Load sample data", Kind: "Data"},
		},
	}
}

func newTable(t *testing.T, p steps.TableProps) Model {
	t.Helper()
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.SetProps(p)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStepsLabelWithoutJob(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})

	view := m.View()
	if !strings.Contains(view, "Steps") {
		t.Errorf("expected Steps label, got:\n%s", view)
	}
	if strings.Contains(view, "Select All") {
		t.Error("install column should be hidden without a token")
	}
	for _, name := range []string{"Install base package", "Deploy metadata", "Load sample data"} {
		if !strings.Contains(view, name) {
			t.Errorf("missing step %q in view", name)
		}
	}
}

func TestAutoExpandFollowsRunningStep(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})
	running := &model.Job{ID: "j1", Status: model.JobStatusStarted, Steps: []string{"s1", "s2"}}
	m.SetJob(running)

	// turn on auto-expand
	m, _ = m.Update(keyRunes("l"))
	if !m.Expansion().ShowLogs || !m.Expansion().Expanded.Has("s1") {
		t.Fatalf("expected s1 expanded with ShowLogs, got %+v", m.Expansion().Expanded.IDs())
	}

	next := &model.Job{
		ID: "j1", Status: model.JobStatusStarted, Steps: []string{"s1", "s2"},
		Results: map[string]model.StepResult{"s1": {Status: model.ResultOK, Logs: "Installed package"}},
	}
	if !m.SetJob(next) {
		t.Fatal("expected panel state to change")
	}
	got := m.Expansion().Expanded.IDs()
	if len(got) != 1 || got[0] != "s2" {
		t.Errorf("expected only s2 expanded, got %v", got)
	}
	if !strings.Contains(m.View(), "Waiting for output") {
		t.Error("expanded active step should show a waiting placeholder")
	}

	// l again hides everything
	m, _ = m.Update(keyRunes("l"))
	if m.Expansion().Expanded.Len() != 0 || m.Expansion().ShowLogs {
		t.Errorf("expected all panels hidden, got %v", m.Expansion().Expanded.IDs())
	}
}

func TestEnterTogglesPanelUnderCursor(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})
	m.SetJob(&model.Job{
		ID: "j1", Status: model.JobStatusComplete, Steps: []string{"s1", "s2"},
		Results: map[string]model.StepResult{"s2": {Status: model.ResultOK, Logs: "Deployed 12 components"}},
	})

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Expansion().Expanded.Has("s2") {
		t.Fatal("expected s2 expanded after enter")
	}
	if !strings.Contains(m.View(), "Deployed 12 components") {
		t.Errorf("expected logs in view:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Expansion().Expanded.Has("s2") {
		t.Error("expected s2 collapsed after second enter")
	}
}

func TestEnterIgnoresStepOutsideJob(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})
	m.SetJob(&model.Job{ID: "j1", Status: model.JobStatusComplete, Steps: []string{"s1", "s2"}})

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if s := m.SelectedStep(); s == nil || s.ID != "s3" {
		t.Fatalf("cursor on %+v, want s3", s)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Expansion().Expanded.IDs(); len(got) != 0 {
		t.Errorf("expanded = %v, want none for a step the job does not run", got)
	}

	m.TogglePanel("s3")
	if m.Expansion().Expanded.Has("s3") {
		t.Error("TogglePanel must not expand a step outside the job")
	}
}

func TestEnterWithoutJobDoesNothing(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Expansion().Expanded.Len() != 0 {
		t.Error("panels only open when a job is shown")
	}
}

func TestSelectEmitsStepsChanged(t *testing.T) {
	org := "00D000000000001"
	user := &model.User{Username: "u", ValidTokenFor: &org}
	plan := testPlan()
	m := newTable(t, steps.TableProps{User: user, Plan: plan, Selected: steps.DefaultSelection(plan, nil)})

	// required step: locked
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Error("required step should not be toggleable")
	}

	m, _ = m.Update(keyRunes("j"))
	_, cmd = m.Update(keyRunes("x"))
	if cmd == nil {
		t.Fatal("expected a command for a selectable step")
	}
	msg, ok := cmd().(ui.StepsChangedMsg)
	if !ok {
		t.Fatalf("expected StepsChangedMsg, got %T", cmd())
	}
	if msg.StepID != "s2" || msg.Selected {
		t.Errorf("expected s2 deselected, got %+v", msg)
	}
}

func TestSelectIgnoredWithoutToken(t *testing.T) {
	plan := testPlan()
	m := newTable(t, steps.TableProps{Plan: plan})
	m, _ = m.Update(keyRunes("j"))
	if _, cmd := m.Update(keyRunes("x")); cmd != nil {
		t.Error("selection needs a valid token")
	}
}

func TestCursorStaysInRange(t *testing.T) {
	m := newTable(t, steps.TableProps{Plan: testPlan()})
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyRunes("j"))
	}
	if s := m.SelectedStep(); s == nil || s.ID != "s3" {
		t.Fatalf("expected cursor on s3, got %+v", s)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyRunes("k"))
	}
	if s := m.SelectedStep(); s == nil || s.ID != "s1" {
		t.Fatalf("expected cursor on s1, got %+v", s)
	}
}
