package core

import (
	"context"
)

// TokenSource yields the current bearer token, empty when signed out.
type TokenSource interface {
	Token() string
}

// AuthAPI is the sign-in surface of the backend.
type AuthAPI interface {
	SignIn(ctx context.Context, userName, password string) (token string, err error)
	VerifyPassword(ctx context.Context, password string) error
}

// ProfileAPI reads the signed-in user's own entity.
type ProfileAPI interface {
	Profile(ctx context.Context) (Profile, error)
	UserProfile(ctx context.Context, userID string) (Profile, error)
}

// FeedAPI reads posts and their comment threads, page-numbered.
type FeedAPI interface {
	Posts(ctx context.Context, page int) ([]Post, error)
	SavedPosts(ctx context.Context, page int) ([]Post, error)
	Comments(ctx context.Context, postID string, page int) ([]Comment, error)
	Replies(ctx context.Context, commentID string, page int) ([]Comment, error)
}

// ComposeAPI creates and removes owned content.
type ComposeAPI interface {
	CreatePost(ctx context.Context, mediaURL string, kind MediaKind, caption string) (Post, error)
	DeletePost(ctx context.Context, postID string) error
	CreateComment(ctx context.Context, postID, parentID, content string) (Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// GraphAPI mutates the follow graph.
type GraphAPI interface {
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
}

// EngagementAPI mutates viewer state on posts. Calls are what the
// optimistic mutation layer confirms against.
type EngagementAPI interface {
	LikePost(ctx context.Context, postID string) error
	UnlikePost(ctx context.Context, postID string) error
	SavePost(ctx context.Context, postID string) error
	UnsavePost(ctx context.Context, postID string) error
}

type NotificationAPI interface {
	Notifications(ctx context.Context, page int) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
	AcceptFollowRequest(ctx context.Context, userID string) error
	RejectFollowRequest(ctx context.Context, userID string) error
}

type StoryAPI interface {
	Stories(ctx context.Context) ([]Story, error)
	CreateStory(ctx context.Context, mediaURL string, kind MediaKind) (Story, error)
	DeleteStory(ctx context.Context, storyID string) error
}

type MessagingAPI interface {
	Conversations(ctx context.Context) ([]Conversation, error)
	Messages(ctx context.Context, peerID string, page int) ([]Message, error)
}

// AdminAPI is the moderation surface, available to admin sessions only.
type AdminAPI interface {
	Users(ctx context.Context, page int) ([]User, error)
	BanUser(ctx context.Context, userID string) error
	UnbanUser(ctx context.Context, userID string) error
	PromoteUser(ctx context.Context, userID string) error
	DemoteUser(ctx context.Context, userID string) error
}
