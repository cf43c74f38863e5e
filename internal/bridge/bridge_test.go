package bridge

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zhulik/pips"

	"socialite/internal/core"
)

func testBridge() *Bridge {
	return &Bridge{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ch:     make(chan pips.D[core.HubEvent], 2),
	}
}

func TestBridge_Enqueue(t *testing.T) {
	t.Parallel()

	t.Run("events land on the pipeline channel", func(t *testing.T) {
		t.Parallel()

		b := testBridge()
		b.enqueue(core.HubEvent{Type: core.EventUserConnected})

		d := <-b.ch
		event, err := d.Unpack()
		require.NoError(t, err)
		require.Equal(t, core.EventUserConnected, event.Type)
	})

	t.Run("full queue drops instead of blocking", func(t *testing.T) {
		t.Parallel()

		b := testBridge()
		b.enqueue(core.HubEvent{Type: "a"})
		b.enqueue(core.HubEvent{Type: "b"})
		b.enqueue(core.HubEvent{Type: "c"})

		require.Len(t, b.ch, 2)
	})

	t.Run("enqueue after shutdown is a no-op", func(t *testing.T) {
		t.Parallel()

		b := testBridge()
		require.NoError(t, b.Shutdown(t.Context()))

		// The hub read loop can still deliver frames at this point;
		// they must not hit the closed channel.
		require.NotPanics(t, func() {
			b.enqueue(core.HubEvent{Type: core.EventMessageReceived})
		})

		_, ok := <-b.ch
		require.False(t, ok)
	})

	t.Run("shutdown twice", func(t *testing.T) {
		t.Parallel()

		b := testBridge()
		require.NoError(t, b.Shutdown(t.Context()))
		require.NoError(t, b.Shutdown(t.Context()))
	})
}

func TestMessageID(t *testing.T) {
	t.Parallel()

	t.Run("message events use the client-generated id", func(t *testing.T) {
		t.Parallel()

		payload, err := json.Marshal(core.MessageReceivedEvent{
			PeerID:  "alice",
			Message: core.Message{ID: "m1"},
		})
		require.NoError(t, err)

		id := messageID(core.HubEvent{Type: core.EventMessageReceived, Payload: payload})
		require.Equal(t, "m1", id)
	})

	t.Run("other kinds have no identity", func(t *testing.T) {
		t.Parallel()

		id := messageID(core.HubEvent{Type: core.EventUserConnected})
		require.Empty(t, id)
	})
}
