package api

import (
	"context"
	"strconv"

	"socialite/internal/core"
)

const (
	adminUsersPath   = "/api/admin/users"
	adminBanPath     = "/api/admin/users/{id}/ban"
	adminPromotePath = "/api/admin/users/{id}/promote"
)

func (c *Client) Users(ctx context.Context, page int) ([]core.User, error) {
	var users []core.User

	res, err := c.r(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&users).
		Get(adminUsersPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) BanUser(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Post(adminBanPath)
	return c.check(res, err)
}

func (c *Client) UnbanUser(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Delete(adminBanPath)
	return c.check(res, err)
}

func (c *Client) PromoteUser(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Post(adminPromotePath)
	return c.check(res, err)
}

func (c *Client) DemoteUser(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Delete(adminPromotePath)
	return c.check(res, err)
}

var _ core.AdminAPI = (*Client)(nil)
