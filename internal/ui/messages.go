package ui

import (
	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

// Data fetched messages
type UserLoadedMsg struct {
	User *model.User
	Err  error
}

type ProductsLoadedMsg struct {
	Products []model.Product
	Err      error
}

type PlanLoadedMsg struct {
	Plan *model.Plan
	Err  error
}

type PreflightLoadedMsg struct {
	PlanID    string
	Preflight *model.Preflight
	Err       error
}

type OrgLoadedMsg struct {
	Org *model.Org
	Err error
}

// JobUpdatedMsg carries a fresh job snapshot from the poller or the file
// watcher.
type JobUpdatedMsg struct {
	Job  *model.Job
	Err  error
	Feed bool // delivered by the file watcher
}

type JobTickMsg struct {
	JobID string
}

type PreflightTickMsg struct {
	PlanID string
}

// FeedClosedMsg reports the job file watcher stopping or failing.
type FeedClosedMsg struct {
	Err error
}

// StepsChangedMsg reports a change to the install selection.
type StepsChangedMsg struct {
	StepID   string
	Selected bool
}

// Action result messages
type JobCreatedMsg struct {
	Job *model.Job
	Err error
}

type PreflightStartedMsg struct {
	Preflight *model.Preflight
	Err       error
}

type SearchDoneMsg struct {
	Results *model.SearchResults
	Err     error
}
