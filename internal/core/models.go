package core

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// PageSize is the backend's fixed page length. A response shorter than
// this means there are no further pages.
const PageSize = 20

type User struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Role        Role   `json:"role"`
	Banned      bool   `json:"banned"`
}

// Profile is the signed-in user's own entity. It is fetched wholesale and
// overwritten wholesale, embedded collections included.
type Profile struct {
	ID             string `json:"id"`
	UserName       string `json:"userName"`
	DisplayName    string `json:"displayName"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatarUrl"`
	PostCount      int    `json:"postCount"`
	FollowerCount  int    `json:"followerCount"`
	FollowingCount int    `json:"followingCount"`

	Posts      []Post `json:"posts"`
	SavedPosts []Post `json:"savedPosts"`
}

type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	MediaURL     string    `json:"mediaUrl"`
	MediaKind    MediaKind `json:"mediaKind"`
	Caption      string    `json:"caption"`
	Hashtags     []string  `json:"hashtags"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`

	// Advisory viewer state, reconciled against the server on every
	// mutating action. Not consistent across sessions.
	Liked bool `json:"liked"`
	Saved bool `json:"saved"`
}

type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	ParentID   string    `json:"parentId,omitempty"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	LikeCount  int       `json:"likeCount"`
	ReplyCount int       `json:"replyCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Story struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	MediaURL     string    `json:"mediaUrl"`
	MediaKind    MediaKind `json:"mediaKind"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StoryGroup is one author's stories in original relative order.
type StoryGroup struct {
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	Stories      []Story
}

// Conversation is a direct-message thread with one peer. Its id is the
// peer's user id.
type Conversation struct {
	PeerID     string    `json:"peerId"`
	PeerName   string    `json:"peerName"`
	PeerAvatar string    `json:"peerAvatar"`
	LastText   string    `json:"lastText"`
	LastAt     time.Time `json:"lastAt"`
	Online     bool      `json:"online"`

	// FirstMatchID deep-links a search result into the thread.
	FirstMatchID string `json:"firstMatchId,omitempty"`
}

type Message struct {
	ID       string    `json:"id"`
	SenderID string    `json:"senderId"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
	Read     bool      `json:"read"`
}

// Equivalent reports whether two messages describe the same send. Exact id
// match wins; the (sender, content, timestamp) tuple is the fallback for
// messages that arrived without an id.
func (m Message) Equivalent(o Message) bool {
	if m.ID != "" && o.ID != "" {
		return m.ID == o.ID
	}
	return m.SenderID == o.SenderID && m.Content == o.Content && m.SentAt.Equal(o.SentAt)
}
