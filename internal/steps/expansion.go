// Package steps tracks which step log panels are expanded while a plan's
// steps are shown alongside a job, and follows the job's running step.
//
// Every transition is a pure function of the current Expansion and its
// inputs. Callers keep the returned value; the boolean result reports
// whether anything changed so a UI layer can skip redundant renders.
package steps

import "github.com/sfdo-tooling/metadeploy-tui/internal/model"

// Expansion is the panel state for one steps table.
type Expansion struct {
	// ShowLogs is set while the table auto-expands the running step.
	ShowLogs bool
	Expanded PanelSet
}

func New() Expansion {
	return Expansion{Expanded: NewPanelSet()}
}

func (e Expansion) equal(o Expansion) bool {
	return e.ShowLogs == o.ShowLogs && e.Expanded.Equal(o.Expanded)
}

// ActiveStep returns the first step of a running job that has not reported a
// result status.
func ActiveStep(job *model.Job) (string, bool) {
	if !job.IsRunning() {
		return "", false
	}
	for _, id := range job.Steps {
		if job.Result(id).Status == "" {
			return id, true
		}
	}
	return "", false
}

// HasLogs reports whether any step of the job has produced log output.
func HasLogs(job *model.Job) bool {
	if job == nil {
		return false
	}
	for _, r := range job.Results {
		if r.Logs != "" {
			return true
		}
	}
	return false
}

// OnJobUpdate reacts to a new job snapshot. A status change turns off
// auto-expand; a change of running step moves the expanded panel from the
// old step to the new one. Both checks read the state as it was before this
// update, so the panel can still move in the same update that turns
// ShowLogs off.
func (e Expansion) OnJobUpdate(prev, curr *model.Job) (Expansion, bool) {
	if curr == nil {
		return e, false
	}
	next := Expansion{ShowLogs: e.ShowLogs, Expanded: e.Expanded}

	statusChanged := prev == nil || prev.Status != curr.Status
	if statusChanged && e.ShowLogs {
		next.ShowLogs = false
	}

	prevActive, hadPrev := ActiveStep(prev)
	currActive, hasCurr := ActiveStep(curr)
	if e.ShowLogs && prevActive != currActive {
		panels := e.Expanded
		if hadPrev && panels.Has(prevActive) {
			panels = panels.Without(prevActive)
		}
		if hasCurr {
			panels = panels.With(currActive)
		}
		next.Expanded = panels
	}

	if next.equal(e) {
		return e, false
	}
	return next, true
}

// TogglePanel expands or collapses one step's panel. Collapsing the running
// step turns off auto-expand.
func (e Expansion) TogglePanel(id string, job *model.Job) (Expansion, bool) {
	next := Expansion{ShowLogs: e.ShowLogs}
	if e.Expanded.Has(id) {
		next.Expanded = e.Expanded.Without(id)
		if active, ok := ActiveStep(job); ok && active == id {
			next.ShowLogs = false
		}
	} else {
		next.Expanded = e.Expanded.With(id)
	}
	return next, !next.equal(e)
}

// ToggleAllLogs collapses every panel when hide is set. Otherwise it turns
// on auto-expand for a running job, or expands every step of a finished one.
// Without a job it does nothing.
func (e Expansion) ToggleAllLogs(hide bool, job *model.Job) (Expansion, bool) {
	if job == nil {
		return e, false
	}
	var next Expansion
	switch {
	case hide:
		next = Expansion{ShowLogs: false, Expanded: NewPanelSet()}
	case job.IsRunning():
		next = Expansion{ShowLogs: true, Expanded: e.Expanded}
		if active, ok := ActiveStep(job); ok {
			next.Expanded = e.Expanded.With(active)
		}
	default:
		next = Expansion{ShowLogs: e.ShowLogs, Expanded: NewPanelSet(job.Steps...)}
	}
	if next.equal(e) {
		return e, false
	}
	return next, true
}
