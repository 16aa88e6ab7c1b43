package logview

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

func TestMatchingLines(t *testing.T) {
	content := "Deploying package\nINFO done\nerror: field missing\nERROR again"
	tests := []struct {
		query string
		want  []int
	}{
		{query: "error", want: []int{2, 3}},
		{query: "deploy", want: []int{0}},
		{query: "absent", want: nil},
		{query: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := matchingLines(content, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matchingLines(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchFlow(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Open(model.Step{ID: "s1", Name: "Deploy"}, model.StepResult{
		Status: model.ResultError,
		Logs:   "start\nwarning one\nok\nwarning two",
	}, false)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.IsSearching() {
		t.Fatal("expected search mode after /")
	}
	for _, r := range "warning" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.IsSearching() {
		t.Error("search mode should end on enter")
	}
	if !strings.Contains(m.View(), "[1/2 matches]") {
		t.Errorf("expected match counter, got:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if !strings.Contains(m.View(), "[2/2 matches]") {
		t.Errorf("expected second match, got:\n%s", m.View())
	}
}

func TestRefreshKeepsStepAndLiveFlag(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Open(model.Step{ID: "s2", Name: "Load data"}, model.StepResult{}, true)

	if !strings.Contains(m.View(), "No logs for this step.") {
		t.Error("expected placeholder for empty log")
	}
	m.Refresh(model.StepResult{Status: model.ResultOK, Logs: "Loaded 40 records"}, false)

	if m.IsLive() {
		t.Error("finished step should not be live")
	}
	if m.StepID() != "s2" || !strings.Contains(m.View(), "Loaded 40 records") {
		t.Errorf("unexpected view:\n%s", m.View())
	}

	m.Close()
	if m.IsOpen() {
		t.Error("expected closed view")
	}
}
