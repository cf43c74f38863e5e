package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/internal/store"
)

type fakeProfileAPI struct {
	profile core.Profile
	err     error
}

func (f *fakeProfileAPI) Profile(_ context.Context) (core.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileAPI) UserProfile(_ context.Context, _ string) (core.Profile, error) {
	return f.profile, f.err
}

func TestProfile(t *testing.T) {
	t.Parallel()

	t.Run("fetch overwrites the whole value", func(t *testing.T) {
		t.Parallel()

		api := &fakeProfileAPI{profile: core.Profile{
			ID:    "me",
			Bio:   "hello",
			Posts: []core.Post{{ID: "p1"}},
		}}
		profile := &store.Profile{Logger: discard(), API: api}

		_, loaded := profile.Get()
		require.False(t, loaded)

		require.NoError(t, profile.Refresh(t.Context()))

		got, loaded := profile.Get()
		require.True(t, loaded)
		require.Equal(t, "hello", got.Bio)
		require.Len(t, got.Posts, 1)

		// Embedded collections are replaced, not merged.
		api.profile = core.Profile{ID: "me", Bio: "updated"}
		require.NoError(t, profile.Refresh(t.Context()))

		got, _ = profile.Get()
		require.Equal(t, "updated", got.Bio)
		require.Empty(t, got.Posts)
	})

	t.Run("failed fetch keeps the stale value", func(t *testing.T) {
		t.Parallel()

		api := &fakeProfileAPI{profile: core.Profile{ID: "me"}}
		profile := &store.Profile{Logger: discard(), API: api}
		require.NoError(t, profile.Refresh(t.Context()))

		api.err = errBackend
		require.ErrorIs(t, profile.Refresh(t.Context()), errBackend)

		got, loaded := profile.Get()
		require.True(t, loaded)
		require.Equal(t, "me", got.ID)
	})

	t.Run("clear drops the value", func(t *testing.T) {
		t.Parallel()

		profile := &store.Profile{Logger: discard(), API: &fakeProfileAPI{}}
		require.NoError(t, profile.Refresh(t.Context()))

		profile.Clear()
		_, loaded := profile.Get()
		require.False(t, loaded)
	})
}
