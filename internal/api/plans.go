package api

import (
	"context"
	"fmt"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var resp model.ProductsResponse
	if err := c.Get(ctx, "products/", &resp); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return resp.Results, nil
}

func (c *Client) GetPlan(ctx context.Context, planID string) (*model.Plan, error) {
	var plan model.Plan
	if err := c.Get(ctx, fmt.Sprintf("plans/%s/", planID), &plan); err != nil {
		return nil, fmt.Errorf("get plan %s: %w", planID, err)
	}
	return &plan, nil
}

// GetPreflight returns the latest preflight for a plan, or nil if none has
// been run.
func (c *Client) GetPreflight(ctx context.Context, planID string) (*model.Preflight, error) {
	var pf model.Preflight
	err := c.Get(ctx, fmt.Sprintf("plans/%s/preflight/", planID), &pf)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preflight for plan %s: %w", planID, err)
	}
	return &pf, nil
}

func (c *Client) StartPreflight(ctx context.Context, planID string) (*model.Preflight, error) {
	var pf model.Preflight
	if err := c.Post(ctx, fmt.Sprintf("plans/%s/preflight/", planID), nil, &pf); err != nil {
		return nil, fmt.Errorf("start preflight for plan %s: %w", planID, err)
	}
	return &pf, nil
}
