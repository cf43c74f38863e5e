package api

import (
	"context"

	"socialite/internal/core"
)

const (
	profilePath     = "/api/profile"
	userProfilePath = "/api/users/{id}/profile"
)

// Profile fetches the signed-in user's own entity, embedded post
// collections included.
func (c *Client) Profile(ctx context.Context) (core.Profile, error) {
	var profile core.Profile

	res, err := c.r(ctx).
		SetResult(&profile).
		Get(profilePath)
	if err := c.check(res, err); err != nil {
		return core.Profile{}, err
	}

	return profile, nil
}

func (c *Client) UserProfile(ctx context.Context, userID string) (core.Profile, error) {
	var profile core.Profile

	res, err := c.r(ctx).
		SetPathParam("id", userID).
		SetResult(&profile).
		Get(userProfilePath)
	if err := c.check(res, err); err != nil {
		return core.Profile{}, err
	}

	return profile, nil
}

var _ core.ProfileAPI = (*Client)(nil)
