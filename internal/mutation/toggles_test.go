package mutation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/internal/mutation"
	"socialite/internal/store"
)

var errBackend = errors.New("backend error")

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeFeedAPI struct {
	posts []core.Post
}

func (f *fakeFeedAPI) Posts(_ context.Context, _ int) ([]core.Post, error) {
	return f.posts, nil
}

func (f *fakeFeedAPI) SavedPosts(_ context.Context, _ int) ([]core.Post, error) {
	return nil, nil
}

func (f *fakeFeedAPI) Comments(_ context.Context, _ string, _ int) ([]core.Comment, error) {
	return nil, nil
}

func (f *fakeFeedAPI) Replies(_ context.Context, _ string, _ int) ([]core.Comment, error) {
	return nil, nil
}

type fakeEngagementAPI struct {
	err   error
	calls []string
}

func (f *fakeEngagementAPI) LikePost(_ context.Context, _ string) error {
	f.calls = append(f.calls, "like")
	return f.err
}

func (f *fakeEngagementAPI) UnlikePost(_ context.Context, _ string) error {
	f.calls = append(f.calls, "unlike")
	return f.err
}

func (f *fakeEngagementAPI) SavePost(_ context.Context, _ string) error {
	f.calls = append(f.calls, "save")
	return f.err
}

func (f *fakeEngagementAPI) UnsavePost(_ context.Context, _ string) error {
	f.calls = append(f.calls, "unsave")
	return f.err
}

func seededToggles(t *testing.T, post core.Post, api *fakeEngagementAPI) (*mutation.Toggles, *store.Feed) {
	t.Helper()

	feed := &store.Feed{Logger: discard(), API: &fakeFeedAPI{posts: []core.Post{post}}}
	require.NoError(t, feed.Refresh(t.Context()))

	return &mutation.Toggles{Logger: discard(), API: api, Feed: feed}, feed
}

func TestToggles_ToggleLike(t *testing.T) {
	t.Parallel()

	t.Run("flips flag and count, backend confirms", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{}
		toggles, feed := seededToggles(t, core.Post{ID: "p1", LikeCount: 3}, api)

		require.NoError(t, toggles.ToggleLike(t.Context(), "p1"))

		post, _ := feed.Post("p1")
		require.True(t, post.Liked)
		require.Equal(t, 4, post.LikeCount)
		require.Equal(t, []string{"like"}, api.calls)
	})

	t.Run("liked post toggles off via delete", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{}
		toggles, feed := seededToggles(t, core.Post{ID: "p1", Liked: true, LikeCount: 3}, api)

		require.NoError(t, toggles.ToggleLike(t.Context(), "p1"))

		post, _ := feed.Post("p1")
		require.False(t, post.Liked)
		require.Equal(t, 2, post.LikeCount)
		require.Equal(t, []string{"unlike"}, api.calls)
	})

	t.Run("backend failure reverts flag and count", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{err: errBackend}
		toggles, feed := seededToggles(t, core.Post{ID: "p1", LikeCount: 3}, api)

		require.ErrorIs(t, toggles.ToggleLike(t.Context(), "p1"), errBackend)

		post, _ := feed.Post("p1")
		require.False(t, post.Liked)
		require.Equal(t, 3, post.LikeCount)
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{}
		toggles, _ := seededToggles(t, core.Post{ID: "p1"}, api)

		require.ErrorIs(t, toggles.ToggleLike(t.Context(), "missing"), core.ErrNotFound)
		require.Empty(t, api.calls)
	})
}

func TestToggles_ToggleSave(t *testing.T) {
	t.Parallel()

	t.Run("flag only, no count involved", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{}
		toggles, feed := seededToggles(t, core.Post{ID: "p1", LikeCount: 3}, api)

		require.NoError(t, toggles.ToggleSave(t.Context(), "p1"))

		post, _ := feed.Post("p1")
		require.True(t, post.Saved)
		require.Equal(t, 3, post.LikeCount)
		require.Equal(t, []string{"save"}, api.calls)
	})

	t.Run("backend failure reverts the flag", func(t *testing.T) {
		t.Parallel()

		api := &fakeEngagementAPI{err: errBackend}
		toggles, feed := seededToggles(t, core.Post{ID: "p1", Saved: true}, api)

		require.ErrorIs(t, toggles.ToggleSave(t.Context(), "p1"), errBackend)

		post, _ := feed.Post("p1")
		require.True(t, post.Saved)
		require.Equal(t, []string{"unsave"}, api.calls)
	})
}
