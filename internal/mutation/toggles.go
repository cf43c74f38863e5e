package mutation

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialite/internal/core"
	"socialite/internal/store"
)

var mutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialite_mutations_total",
	Help: "The total number of optimistic mutations by outcome",
}, []string{"kind", "outcome"})

// Toggles applies like/save actions optimistically: local state flips
// before the request, and flips back if the request fails. A failure is
// terminal for that attempt, there is no retry queue.
type Toggles struct {
	Logger *slog.Logger
	API    core.EngagementAPI
	Feed   *store.Feed
}

func (t *Toggles) Init(_ context.Context) error {
	t.Logger = t.Logger.With("component", "mutation.Toggles")
	return nil
}

// ToggleLike flips the liked flag and adjusts the like count immediately,
// then confirms against the backend.
func (t *Toggles) ToggleLike(ctx context.Context, postID string) error {
	post, ok := t.Feed.Post(postID)
	if !ok {
		return core.ErrNotFound
	}

	applied := post
	if post.Liked {
		applied.Liked = false
		applied.LikeCount--
	} else {
		applied.Liked = true
		applied.LikeCount++
	}

	pending := Begin(post, applied)
	t.Feed.ApplyPost(pending.Applied)

	var err error
	if post.Liked {
		err = t.API.UnlikePost(ctx, postID)
	} else {
		err = t.API.LikePost(ctx, postID)
	}

	if err != nil {
		t.Feed.ApplyPost(pending.Rollback())
		mutations.WithLabelValues("like", "rolled_back").Inc()
		t.Logger.Warn("like toggle failed", "post", postID, "error", err)
		return err
	}

	t.Feed.ApplyPost(pending.Confirm())
	mutations.WithLabelValues("like", "confirmed").Inc()
	return nil
}

// ToggleSave is the flag-only variant, no count involved.
func (t *Toggles) ToggleSave(ctx context.Context, postID string) error {
	post, ok := t.Feed.Post(postID)
	if !ok {
		return core.ErrNotFound
	}

	applied := post
	applied.Saved = !post.Saved

	pending := Begin(post, applied)
	t.Feed.ApplyPost(pending.Applied)

	var err error
	if post.Saved {
		err = t.API.UnsavePost(ctx, postID)
	} else {
		err = t.API.SavePost(ctx, postID)
	}

	if err != nil {
		t.Feed.ApplyPost(pending.Rollback())
		mutations.WithLabelValues("save", "rolled_back").Inc()
		t.Logger.Warn("save toggle failed", "post", postID, "error", err)
		return err
	}

	t.Feed.ApplyPost(pending.Confirm())
	mutations.WithLabelValues("save", "confirmed").Inc()
	return nil
}
