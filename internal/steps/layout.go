package steps

import "github.com/sfdo-tooling/metadeploy-tui/internal/model"

const (
	LabelSteps   = "Steps"
	LabelType    = "Type"
	LabelInstall = "Install"
	// LabelSelectAll heads the install column before a job exists.
	LabelSelectAll = "Select All"
)

// TableProps is everything the steps table reads from its surroundings.
// All fields are optional except Plan.
type TableProps struct {
	User      *model.User
	Plan      model.Plan
	Preflight *model.Preflight
	Steps     []model.Step
	Selected  model.SelectedSteps
	Job       *model.Job
}

// ToggleLabel parameterises the show/hide-all-logs control in the name
// column header.
type ToggleLabel struct {
	LogsExpanded bool
	HasLogs      bool
}

type Row struct {
	Step     model.Step
	Expanded bool
	Active   bool
	// Result is the job's report for this step; zero without a job.
	Result model.StepResult
	// Selected is the install checkbox state.
	Selected   bool
	Selectable bool
}

type TableLayout struct {
	HasValidToken     bool
	HasReadyPreflight bool
	LogsExpanded      bool
	HasLogs           bool
	ActiveStep        string
	HasActiveStep     bool

	// Toggle is non-nil when a job is present; NameLabel is used otherwise.
	Toggle    *ToggleLabel
	NameLabel string

	ShowInstallColumn bool
	InstallLabel      string
	SelectionEnabled  bool

	Rows []Row
}

// Layout derives what the table shows for the given inputs and panel state.
func Layout(p TableProps, e Expansion) TableLayout {
	l := TableLayout{
		HasValidToken:     p.User.HasValidToken(),
		HasReadyPreflight: !p.Plan.RequiresPreflight || (p.Preflight != nil && p.Preflight.IsReady),
		LogsExpanded:      e.Expanded.Len() > 0,
		HasLogs:           HasLogs(p.Job),
	}
	l.ActiveStep, l.HasActiveStep = ActiveStep(p.Job)
	l.SelectionEnabled = l.HasValidToken && l.HasReadyPreflight

	if p.Job != nil {
		l.Toggle = &ToggleLabel{LogsExpanded: l.LogsExpanded, HasLogs: l.HasLogs}
	} else {
		l.NameLabel = LabelSteps
	}

	l.ShowInstallColumn = p.Job != nil || l.SelectionEnabled
	if p.Job != nil {
		l.InstallLabel = LabelInstall
	} else {
		l.InstallLabel = LabelSelectAll
	}

	l.Rows = make([]Row, 0, len(p.Steps))
	for _, s := range p.Steps {
		row := Row{
			Step:     s,
			Expanded: e.Expanded.Has(s.ID),
			Active:   l.HasActiveStep && s.ID == l.ActiveStep,
			Result:   p.Job.Result(s.ID),
		}
		if p.Job != nil {
			row.Selected = containsStep(p.Job.Steps, s.ID)
		} else {
			row.Selected = IsSelected(s, p.Preflight, p.Selected)
			row.Selectable = l.SelectionEnabled && IsSelectable(s, p.Preflight)
		}
		l.Rows = append(l.Rows, row)
	}
	return l
}

// IsSelectable reports whether the user may change a step's install
// checkbox. Preflight verdicts override the plan's required flag.
func IsSelectable(s model.Step, pf *model.Preflight) bool {
	switch pf.StepStatus(s.ID) {
	case model.ResultSkip:
		return false
	case model.ResultOptional:
		return true
	}
	return !s.IsRequired
}

// IsSelected reports whether a step will be installed. Steps that cannot be
// deselected are always in; skipped steps are always out.
func IsSelected(s model.Step, pf *model.Preflight, selected model.SelectedSteps) bool {
	if pf.StepStatus(s.ID) == model.ResultSkip {
		return false
	}
	if !IsSelectable(s, pf) {
		return true
	}
	return selected[s.ID]
}

// DefaultSelection pre-selects recommended and required steps.
func DefaultSelection(plan model.Plan, pf *model.Preflight) model.SelectedSteps {
	sel := make(model.SelectedSteps)
	for _, s := range plan.Steps {
		if pf.StepStatus(s.ID) == model.ResultSkip {
			continue
		}
		if s.IsRequired || s.IsRecommended {
			sel[s.ID] = true
		}
	}
	return sel
}

func containsStep(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
