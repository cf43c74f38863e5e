package api

import (
	"context"
	"strconv"

	"socialite/internal/core"
)

const (
	notificationsPath    = "/api/notifications"
	notificationReadPath = "/api/notifications/{id}/read"
	notificationsAllRead = "/api/notifications/read-all"
	followRequestPath    = "/api/follow-requests/{id}"
)

func (c *Client) Notifications(ctx context.Context, page int) ([]core.Notification, error) {
	var notifications []core.Notification

	res, err := c.r(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&notifications).
		Get(notificationsPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	res, err := c.r(ctx).SetPathParam("id", notificationID).Post(notificationReadPath)
	return c.check(res, err)
}

func (c *Client) MarkAllRead(ctx context.Context) error {
	res, err := c.r(ctx).Post(notificationsAllRead)
	return c.check(res, err)
}

func (c *Client) AcceptFollowRequest(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Post(followRequestPath)
	return c.check(res, err)
}

func (c *Client) RejectFollowRequest(ctx context.Context, userID string) error {
	res, err := c.r(ctx).SetPathParam("id", userID).Delete(followRequestPath)
	return c.check(res, err)
}

var _ core.NotificationAPI = (*Client)(nil)
