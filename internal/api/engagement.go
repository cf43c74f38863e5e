package api

import (
	"context"

	"socialite/internal/core"
)

const (
	likePath = "/api/posts/{id}/like"
	savePath = "/api/posts/{id}/save"
)

func (c *Client) LikePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).SetPathParam("id", postID).Post(likePath)
	return c.check(res, err)
}

func (c *Client) UnlikePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).SetPathParam("id", postID).Delete(likePath)
	return c.check(res, err)
}

func (c *Client) SavePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).SetPathParam("id", postID).Post(savePath)
	return c.check(res, err)
}

func (c *Client) UnsavePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).SetPathParam("id", postID).Delete(savePath)
	return c.check(res, err)
}

var _ core.EngagementAPI = (*Client)(nil)
