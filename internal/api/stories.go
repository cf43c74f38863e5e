package api

import (
	"context"

	"socialite/internal/core"
)

const (
	storiesPath = "/api/stories"
	storyPath   = "/api/stories/{id}"
)

func (c *Client) Stories(ctx context.Context) ([]core.Story, error) {
	var stories []core.Story

	res, err := c.r(ctx).
		SetResult(&stories).
		Get(storiesPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return stories, nil
}

func (c *Client) CreateStory(ctx context.Context, mediaURL string, kind core.MediaKind) (core.Story, error) {
	var story core.Story

	res, err := c.r(ctx).
		SetBody(map[string]string{"mediaUrl": mediaURL, "mediaKind": string(kind)}).
		SetResult(&story).
		Post(storiesPath)
	if err := c.check(res, err); err != nil {
		return core.Story{}, err
	}

	return story, nil
}

func (c *Client) DeleteStory(ctx context.Context, storyID string) error {
	res, err := c.r(ctx).SetPathParam("id", storyID).Delete(storyPath)
	return c.check(res, err)
}

var _ core.StoryAPI = (*Client)(nil)
