package api

import (
	"context"
	"fmt"

	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

// GetUser returns the signed-in user, or nil for an anonymous session.
func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	var u model.User
	err := c.Get(ctx, "user/", &u)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetOrg returns the user's connected org, or nil when there is none.
func (c *Client) GetOrg(ctx context.Context) (*model.Org, error) {
	var o model.Org
	err := c.Get(ctx, "org/", &o)
	if err != nil {
		if IsNotFound(err) || IsUnauthorized(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get org: %w", err)
	}
	return &o, nil
}
