package api

import (
	"context"
	"strconv"

	"socialite/internal/core"
)

const (
	postsPath      = "/api/posts"
	savedPostsPath = "/api/posts/saved"
	commentsPath   = "/api/posts/{id}/comments"
	repliesPath    = "/api/comments/{id}/replies"
)

func (c *Client) Posts(ctx context.Context, page int) ([]core.Post, error) {
	var posts []core.Post

	res, err := c.r(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&posts).
		Get(postsPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return posts, nil
}

func (c *Client) SavedPosts(ctx context.Context, page int) ([]core.Post, error) {
	var posts []core.Post

	res, err := c.r(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&posts).
		Get(savedPostsPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return posts, nil
}

func (c *Client) Comments(ctx context.Context, postID string, page int) ([]core.Comment, error) {
	var comments []core.Comment

	res, err := c.r(ctx).
		SetPathParam("id", postID).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&comments).
		Get(commentsPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return comments, nil
}

// Replies pages through the nested thread under one parent comment.
func (c *Client) Replies(ctx context.Context, commentID string, page int) ([]core.Comment, error) {
	var comments []core.Comment

	res, err := c.r(ctx).
		SetPathParam("id", commentID).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(&comments).
		Get(repliesPath)
	if err := c.check(res, err); err != nil {
		return nil, err
	}

	return comments, nil
}

var _ core.FeedAPI = (*Client)(nil)
