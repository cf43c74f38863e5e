package core

import "time"

type NotificationKind string

const (
	NotificationLike          NotificationKind = "like"
	NotificationFollow        NotificationKind = "follow"
	NotificationFollowRequest NotificationKind = "follow_request"
	NotificationComment       NotificationKind = "comment"
)

// Notification is a tagged union discriminated by Kind. PostID is set for
// like and comment notifications, CommentID for comment notifications
// only; follow variants carry just the actor.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Actor     User             `json:"actor"`
	PostID    string           `json:"postId,omitempty"`
	CommentID string           `json:"commentId,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
