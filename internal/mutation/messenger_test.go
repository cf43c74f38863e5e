package mutation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/internal/hub"
	"socialite/internal/mutation"
	"socialite/internal/session"
	"socialite/internal/store"
)

func TestMessenger_Send(t *testing.T) {
	t.Parallel()

	t.Run("hub not connected drops the send", func(t *testing.T) {
		t.Parallel()

		messenger := &mutation.Messenger{
			Logger:        discard(),
			Session:       &session.Session{},
			Hubs:          &hub.Hubs{Chat: hub.NewClient(core.HubChat, "ws://nowhere", discard())},
			Conversations: &store.Conversations{Logger: discard()},
		}

		_, err := messenger.Send(t.Context(), "alice", "hello")
		require.ErrorIs(t, err, core.ErrNotConnected)

		// Nothing appended locally.
		require.Empty(t, messenger.Conversations.Messages("alice"))
	})
}
