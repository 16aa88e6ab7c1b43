package api

import (
	"context"
	"fmt"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

func (c *Client) GetJob(ctx context.Context, jobID string) (*model.Job, error) {
	var job model.Job
	if err := c.Get(ctx, fmt.Sprintf("jobs/%s/", jobID), &job); err != nil {
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}
	return &job, nil
}

// CreateJob starts installing the given steps of a plan.
func (c *Client) CreateJob(ctx context.Context, planID string, steps []string) (*model.Job, error) {
	var job model.Job
	body := model.CreateJobRequest{Plan: planID, Steps: steps}
	if err := c.Post(ctx, "jobs/", body, &job); err != nil {
		return nil, fmt.Errorf("create job for plan %s: %w", planID, err)
	}
	return &job, nil
}
