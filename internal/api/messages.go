package api

import (
	"context"
	"strconv"

	"socialite/internal/core"
)

const (
	conversationsPath = "/api/conversations"
	messagesPath      = "/api/conversations/{id}/messages"
)

func (c *Client) Conversations(ctx context.Context) ([]core.Conversation, error) {
	var conversations []core.Conversation

	res, err := c.r(ctx).
		SetResult(&conversations).
		Get(conversationsPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return conversations, nil
}

// Messages returns one page of a thread, oldest to newest.
func (c *Client) Messages(ctx context.Context, peerID string, page int) ([]core.Message, error) {
	var messages []core.Message

	res, err := c.r(ctx).
		SetPathParam("id", peerID).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&messages).
		Get(messagesPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return messages, nil
}

var _ core.MessagingAPI = (*Client)(nil)
