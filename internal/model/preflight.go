package model

type PreflightStatus string

const (
	PreflightStarted  PreflightStatus = "started"
	PreflightComplete PreflightStatus = "complete"
	PreflightFailed   PreflightStatus = "failed"
	PreflightCanceled PreflightStatus = "canceled"
)

type Preflight struct {
	ID           string                `json:"id"`
	Plan         string                `json:"plan"`
	Status       PreflightStatus       `json:"status"`
	IsReady      bool                  `json:"is_ready"`
	Results      map[string]StepResult `json:"results"`
	ErrorCount   int                   `json:"error_count"`
	WarningCount int                   `json:"warning_count"`
}

// StepStatus returns the preflight verdict for a step, if any.
func (p *Preflight) StepStatus(stepID string) ResultStatus {
	if p == nil {
		return ""
	}
	return p.Results[stepID].Status
}
