package model

import "time"

type JobStatus string

const (
	JobStatusStarted  JobStatus = "started"
	JobStatusComplete JobStatus = "complete"
	JobStatusFailed   JobStatus = "failed"
	JobStatusCanceled JobStatus = "canceled"
)

type ResultStatus string

const (
	ResultOK       ResultStatus = "ok"
	ResultWarn     ResultStatus = "warn"
	ResultError    ResultStatus = "error"
	ResultSkip     ResultStatus = "skip"
	ResultOptional ResultStatus = "optional"
)

// StepResult is what a job or preflight reports for one step. An empty
// Status means the step has not reported yet.
type StepResult struct {
	Status  ResultStatus `json:"status" yaml:"status" toml:"status"`
	Message string       `json:"message,omitempty" yaml:"message" toml:"message"`
	Logs    string       `json:"logs,omitempty" yaml:"logs" toml:"logs"`
}

type Job struct {
	ID        string                `json:"id" yaml:"id" toml:"id"`
	Plan      string                `json:"plan" yaml:"plan" toml:"plan"`
	Status    JobStatus             `json:"status" yaml:"status" toml:"status"`
	Steps     []string              `json:"steps" yaml:"steps" toml:"steps"`
	Results   map[string]StepResult `json:"results" yaml:"results" toml:"results"`
	OrgName   string                `json:"org_name" yaml:"org_name" toml:"org_name"`
	CreatedAt time.Time             `json:"created_at" yaml:"created_at" toml:"created_at"`
	EditedAt  time.Time             `json:"edited_at" yaml:"edited_at" toml:"edited_at"`
}

func (j *Job) IsRunning() bool {
	return j != nil && j.Status == JobStatusStarted
}

// Result returns the result reported for a step. Missing entries read as a
// zero StepResult, i.e. not yet completed.
func (j *Job) Result(stepID string) StepResult {
	if j == nil {
		return StepResult{}
	}
	return j.Results[stepID]
}

// Duration returns the time between creation and the last edit.
func (j *Job) Duration() time.Duration {
	if j == nil || j.CreatedAt.IsZero() || j.EditedAt.IsZero() {
		return 0
	}
	return j.EditedAt.Sub(j.CreatedAt)
}

type CreateJobRequest struct {
	Plan  string   `json:"plan"`
	Steps []string `json:"steps"`
}
