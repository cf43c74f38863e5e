package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"socialite/internal/core"
	"socialite/internal/store"
)

func seededConversations(t *testing.T, api *fakeMessagingAPI) *store.Conversations {
	t.Helper()

	conversations := &store.Conversations{Logger: discard(), API: api}
	require.NoError(t, conversations.Refresh(t.Context()))
	return conversations
}

func TestConversations_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("replaces the list keeping known presence", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{
			{PeerID: "alice"},
			{PeerID: "bob"},
		}}
		conversations := seededConversations(t, api)
		conversations.SetOnline("alice", true)

		require.NoError(t, conversations.Refresh(t.Context()))

		list := conversations.List()
		require.Len(t, list, 2)
		require.True(t, list[0].Online)
		require.False(t, list[1].Online)
	})

	t.Run("failed fetch keeps the prior list", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{{PeerID: "alice"}}}
		conversations := seededConversations(t, api)

		api.err = errBackend
		require.ErrorIs(t, conversations.Refresh(t.Context()), errBackend)
		require.Len(t, conversations.List(), 1)
	})
}

func TestConversations_FetchMessages(t *testing.T) {
	t.Parallel()

	sent := time.Now().UTC()
	page1 := []core.Message{
		{ID: "m1", SenderID: "alice", Content: "hi", SentAt: sent},
		{ID: "m2", SenderID: "me", Content: "hey", SentAt: sent.Add(time.Minute)},
	}
	page2 := []core.Message{
		{ID: "m2", SenderID: "me", Content: "hey", SentAt: sent.Add(time.Minute)},
		{ID: "m3", SenderID: "alice", Content: "how are you", SentAt: sent.Add(2 * time.Minute)},
	}

	api := &fakeMessagingAPI{messages: map[int][]core.Message{1: page1, 2: page2}}
	conversations := &store.Conversations{Logger: discard(), API: api}

	require.NoError(t, conversations.FetchMessages(t.Context(), "alice", 1))
	require.Len(t, conversations.Messages("alice"), 2)

	require.NoError(t, conversations.FetchMessages(t.Context(), "alice", 2))
	require.Len(t, conversations.Messages("alice"), 3)

	require.NoError(t, conversations.FetchMessages(t.Context(), "alice", 1))
	require.Len(t, conversations.Messages("alice"), 2)
}

func TestConversations_ApplyIncoming(t *testing.T) {
	t.Parallel()

	t.Run("appends and promotes the conversation", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{
			{PeerID: "alice"},
			{PeerID: "bob"},
		}}
		conversations := seededConversations(t, api)

		msg := core.Message{ID: "m1", SenderID: "bob", Content: "ping", SentAt: time.Now().UTC()}
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "bob", Message: msg})

		list := conversations.List()
		require.Equal(t, "bob", list[0].PeerID)
		require.Equal(t, "ping", list[0].LastText)
		require.Equal(t, "alice", list[1].PeerID)
		require.Len(t, conversations.Messages("bob"), 1)
	})

	t.Run("echo of an own send is dropped by id", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{{PeerID: "alice"}}}
		conversations := seededConversations(t, api)

		msg := core.Message{ID: "m1", SenderID: "me", Content: "hello", SentAt: time.Now().UTC()}
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: msg})
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: msg})

		require.Len(t, conversations.Messages("alice"), 1)
	})

	t.Run("id-less duplicate is dropped by content tuple", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{{PeerID: "alice"}}}
		conversations := seededConversations(t, api)

		sent := time.Now().UTC()
		msg := core.Message{SenderID: "alice", Content: "hello", SentAt: sent}
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: msg})
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: msg})

		require.Len(t, conversations.Messages("alice"), 1)
	})

	t.Run("unknown peer opens a new thread at the top", func(t *testing.T) {
		t.Parallel()

		api := &fakeMessagingAPI{conversations: []core.Conversation{{PeerID: "alice"}}}
		conversations := seededConversations(t, api)

		msg := core.Message{ID: "m1", SenderID: "carol", Content: "hi there", SentAt: time.Now().UTC()}
		conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "carol", Message: msg})

		list := conversations.List()
		require.Len(t, list, 2)
		require.Equal(t, "carol", list[0].PeerID)
		require.True(t, list[0].Online)
	})
}

func TestConversations_Unread(t *testing.T) {
	t.Parallel()

	api := &fakeMessagingAPI{conversations: []core.Conversation{{PeerID: "alice"}}}
	conversations := seededConversations(t, api)

	sent := time.Now().UTC()
	conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: core.Message{
		ID: "m1", SenderID: "alice", Content: "one", SentAt: sent,
	}})
	conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: core.Message{
		ID: "m2", SenderID: "me", Content: "two", SentAt: sent.Add(time.Second),
	}})
	conversations.ApplyIncoming(core.MessageReceivedEvent{PeerID: "alice", Message: core.Message{
		ID: "m3", SenderID: "alice", Content: "three", SentAt: sent.Add(2 * time.Second),
	}})

	// Own messages never count as unread.
	require.Equal(t, 2, conversations.UnreadCount("alice"))

	conversations.MarkRead("alice")
	require.Equal(t, 0, conversations.UnreadCount("alice"))
}
