package api

import (
	"context"

	"socialite/internal/core"
)

const (
	postPath    = "/api/posts/{id}"
	commentPath = "/api/comments/{id}"
)

func (c *Client) CreatePost(ctx context.Context, mediaURL string, kind core.MediaKind, caption string) (core.Post, error) {
	var post core.Post

	res, err := c.r(ctx).
		SetBody(map[string]string{"mediaUrl": mediaURL, "mediaKind": string(kind), "caption": caption}).
		SetResult(&post).
		Post(postsPath)
	if err := c.check(res, err); err != nil {
		return core.Post{}, err
	}

	return post, nil
}

func (c *Client) DeletePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).SetPathParam("id", postID).Delete(postPath)
	return c.check(res, err)
}

// CreateComment posts a comment, or a reply when parentID is set.
func (c *Client) CreateComment(ctx context.Context, postID, parentID, content string) (core.Comment, error) {
	var comment core.Comment

	body := map[string]string{"content": content}
	if parentID != "" {
		body["parentId"] = parentID
	}

	res, err := c.r(ctx).
		SetPathParam("id", postID).
		SetBody(body).
		SetResult(&comment).
		Post(commentsPath)
	if err := c.check(res, err); err != nil {
		return core.Comment{}, err
	}

	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	res, err := c.r(ctx).SetPathParam("id", commentID).Delete(commentPath)
	return c.check(res, err)
}

var _ core.ComposeAPI = (*Client)(nil)
