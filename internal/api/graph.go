package api

import (
	"context"

	"socialite/internal/core"
)

const followPath = "/api/users/{id}/follow"

// Follow requests or establishes a follow; the backend decides which
// based on the target's privacy setting.
func (c *Client) Follow(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Post(followPath)
	return c.check(res, err)
}

func (c *Client) Unfollow(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Delete(followPath)
	return c.check(res, err)
}

var _ core.GraphAPI = (*Client)(nil)
