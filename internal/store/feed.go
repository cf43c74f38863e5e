package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"socialite/internal/core"
)

type thread struct {
	items   []core.Comment
	page    int
	hasMore bool
}

// Feed holds the latest fetched posts and their comment threads. Comment
// threads accumulate page by page; everything else is replaced wholesale
// on fetch.
type Feed struct {
	Logger *slog.Logger
	API    core.FeedAPI

	mu       sync.RWMutex
	posts    []core.Post
	postPage int
	hasMore  bool
	comments map[string]*thread
	replies  map[string]*thread

	fence *fence
}

func (f *Feed) Init(_ context.Context) error {
	f.Logger = f.Logger.With("component", "store.Feed")
	f.ensure()
	return nil
}

func (f *Feed) ensure() {
	if f.comments == nil {
		f.comments = map[string]*thread{}
	}
	if f.replies == nil {
		f.replies = map[string]*thread{}
	}
	if f.fence == nil {
		f.fence = newFence()
	}
}

// Refresh replaces the post list with page one. A failed fetch leaves the
// prior list untouched; a stale response is discarded.
func (f *Feed) Refresh(ctx context.Context) error {
	f.ensure()
	seq := f.fence.begin("posts")

	posts, err := f.API.Posts(ctx, 1)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.fence.commit("posts", seq) {
		return nil
	}

	f.posts = posts
	f.postPage = 1
	f.hasMore = len(posts) == core.PageSize
	return nil
}

// LoadMore appends the next page of posts, skipping ids already present.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.RLock()
	page := f.postPage + 1
	more := f.hasMore
	f.mu.RUnlock()

	if !more {
		return nil
	}

	posts, err := f.API.Posts(ctx, page)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	seen := lo.SliceToMap(f.posts, func(p core.Post) (string, struct{}) { return p.ID, struct{}{} })
	for _, post := range posts {
		if _, ok := seen[post.ID]; ok {
			continue
		}
		f.posts = append(f.posts, post)
	}
	f.postPage = page
	f.hasMore = len(posts) == core.PageSize
	return nil
}

// FetchComments loads one page of a post's comment thread. Page one
// replaces the thread, later pages append without duplicating earlier
// entries; has-more turns false once a short page arrives.
func (f *Feed) FetchComments(ctx context.Context, postID string, page int) error {
	f.ensure()
	key := "comments/" + postID
	seq := f.fence.begin(key)

	items, err := f.API.Comments(ctx, postID, page)
	if err != nil {
		return err
	}
	f.applyThread(f.comments, key, seq, postID, page, items)
	return nil
}

// FetchReplies pages the nested thread under one parent comment. Each
// parent keeps an independent cursor.
func (f *Feed) FetchReplies(ctx context.Context, commentID string, page int) error {
	f.ensure()
	key := "replies/" + commentID
	seq := f.fence.begin(key)

	items, err := f.API.Replies(ctx, commentID, page)
	if err != nil {
		return err
	}
	f.applyThread(f.replies, key, seq, commentID, page, items)
	return nil
}

func (f *Feed) applyThread(threads map[string]*thread, fenceKey string, seq uint64, key string, page int, items []core.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.fence.commit(fenceKey, seq) {
		return
	}

	t := threads[key]
	if t == nil || page == 1 {
		t = &thread{}
		threads[key] = t
	}

	seen := lo.SliceToMap(t.items, func(c core.Comment) (string, struct{}) { return c.ID, struct{}{} })
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		t.items = append(t.items, item)
	}
	t.page = page
	t.hasMore = len(items) == core.PageSize
}

// Post returns the current value of one post.
func (f *Feed) Post(postID string) (core.Post, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	post, ok := lo.Find(f.posts, func(p core.Post) bool { return p.ID == postID })
	return post, ok
}

// ApplyPost replaces one post's value in place, preserving order. Used by
// the optimistic mutation layer.
func (f *Feed) ApplyPost(post core.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i] = post
			return
		}
	}
}

func (f *Feed) Posts() []core.Post {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]core.Post(nil), f.posts...)
}

func (f *Feed) HasMore() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.hasMore
}

// Comments returns the accumulated thread and whether more pages remain.
func (f *Feed) Comments(postID string) ([]core.Comment, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t := f.comments[postID]
	if t == nil {
		return nil, true
	}
	return append([]core.Comment(nil), t.items...), t.hasMore
}

func (f *Feed) Replies(commentID string) ([]core.Comment, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	t := f.replies[commentID]
	if t == nil {
		return nil, true
	}
	return append([]core.Comment(nil), t.items...), t.hasMore
}
