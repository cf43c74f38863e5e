package store_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"socialite/internal/core"
)

var errBackend = errors.New("backend error")

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makePosts(page, count int) []core.Post {
	posts := make([]core.Post, count)
	for i := range posts {
		posts[i] = core.Post{
			ID:        fmt.Sprintf("post-%d-%d", page, i),
			LikeCount: i,
		}
	}
	return posts
}

func makeComments(page, count int) []core.Comment {
	comments := make([]core.Comment, count)
	for i := range comments {
		comments[i] = core.Comment{ID: fmt.Sprintf("comment-%d-%d", page, i)}
	}
	return comments
}

// fakeFeedAPI serves canned pages keyed by page number.
type fakeFeedAPI struct {
	posts    map[int][]core.Post
	comments map[int][]core.Comment
	err      error
}

func (f *fakeFeedAPI) Posts(_ context.Context, page int) ([]core.Post, error) {
	return f.posts[page], f.err
}

func (f *fakeFeedAPI) SavedPosts(_ context.Context, page int) ([]core.Post, error) {
	return f.posts[page], f.err
}

func (f *fakeFeedAPI) Comments(_ context.Context, _ string, page int) ([]core.Comment, error) {
	return f.comments[page], f.err
}

func (f *fakeFeedAPI) Replies(_ context.Context, _ string, page int) ([]core.Comment, error) {
	return f.comments[page], f.err
}

type fakeMessagingAPI struct {
	conversations []core.Conversation
	messages      map[int][]core.Message
	err           error
}

func (f *fakeMessagingAPI) Conversations(_ context.Context) ([]core.Conversation, error) {
	return f.conversations, f.err
}

func (f *fakeMessagingAPI) Messages(_ context.Context, _ string, page int) ([]core.Message, error) {
	return f.messages[page], f.err
}

type fakeNotificationAPI struct {
	pages map[int][]core.Notification

	markReadErr error
	resolveErr  error

	markedRead []string
	accepted   []string
	rejected   []string
}

func (f *fakeNotificationAPI) Notifications(_ context.Context, page int) ([]core.Notification, error) {
	return f.pages[page], nil
}

func (f *fakeNotificationAPI) MarkRead(_ context.Context, id string) error {
	f.markedRead = append(f.markedRead, id)
	return f.markReadErr
}

func (f *fakeNotificationAPI) MarkAllRead(_ context.Context) error {
	return f.markReadErr
}

func (f *fakeNotificationAPI) AcceptFollowRequest(_ context.Context, userID string) error {
	f.accepted = append(f.accepted, userID)
	return f.resolveErr
}

func (f *fakeNotificationAPI) RejectFollowRequest(_ context.Context, userID string) error {
	f.rejected = append(f.rejected, userID)
	return f.resolveErr
}

type fakeStoryAPI struct {
	stories []core.Story
	err     error
}

func (f *fakeStoryAPI) Stories(_ context.Context) ([]core.Story, error) {
	return f.stories, f.err
}

func (f *fakeStoryAPI) CreateStory(_ context.Context, mediaURL string, kind core.MediaKind) (core.Story, error) {
	if f.err != nil {
		return core.Story{}, f.err
	}
	return core.Story{ID: "created", MediaURL: mediaURL, MediaKind: kind, CreatedAt: time.Now()}, nil
}

func (f *fakeStoryAPI) DeleteStory(_ context.Context, _ string) error {
	return f.err
}
