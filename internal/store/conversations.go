package store

import (
	"context"
	"log/slog"
	"sync"

	"socialite/internal/core"
)

// Conversations holds the latest fetched threads and reconciles them with
// events arriving over the chat hub.
type Conversations struct {
	Logger *slog.Logger
	API    core.MessagingAPI

	mu       sync.RWMutex
	list     []core.Conversation
	messages map[string][]core.Message

	fence *fence
}

func (c *Conversations) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "store.Conversations")
	c.ensure()
	return nil
}

func (c *Conversations) ensure() {
	if c.messages == nil {
		c.messages = map[string][]core.Message{}
	}
	if c.fence == nil {
		c.fence = newFence()
	}
}

// Refresh replaces the conversation list. Online flags already known
// locally survive the replace; the REST payload does not carry presence.
func (c *Conversations) Refresh(ctx context.Context) error {
	c.ensure()
	seq := c.fence.begin("conversations")

	list, err := c.API.Conversations(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fence.commit("conversations", seq) {
		return nil
	}

	online := map[string]bool{}
	for _, conv := range c.list {
		if conv.Online {
			online[conv.PeerID] = true
		}
	}
	for i := range list {
		list[i].Online = online[list[i].PeerID]
	}

	c.list = list
	return nil
}

// FetchMessages loads one page of a thread. Page one replaces the thread,
// later pages append with de-duplication.
func (c *Conversations) FetchMessages(ctx context.Context, peerID string, page int) error {
	c.ensure()
	seq := c.fence.begin("messages/" + peerID)

	items, err := c.API.Messages(ctx, peerID, page)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fence.commit("messages/"+peerID, seq) {
		return nil
	}

	if page == 1 {
		c.messages[peerID] = items
		return nil
	}

	for _, msg := range items {
		c.appendLocked(peerID, msg)
	}
	return nil
}

// ApplyIncoming reconciles a message_received event into the thread and
// the conversation preview. A message equivalent to one already present
// is dropped, so the server echo of an own send never double-appends.
func (c *Conversations) ApplyIncoming(ev core.MessageReceivedEvent) {
	c.ensure()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.appendLocked(ev.PeerID, ev.Message) {
		return
	}

	for i := range c.list {
		if c.list[i].PeerID == ev.PeerID {
			c.list[i].LastText = ev.Message.Content
			c.list[i].LastAt = ev.Message.SentAt
			conv := c.list[i]
			copy(c.list[1:i+1], c.list[:i])
			c.list[0] = conv
			return
		}
	}

	// First message from an unknown peer opens a new thread.
	c.list = append([]core.Conversation{{
		PeerID:   ev.PeerID,
		LastText: ev.Message.Content,
		LastAt:   ev.Message.SentAt,
		Online:   true,
	}}, c.list...)
}

func (c *Conversations) appendLocked(peerID string, msg core.Message) bool {
	for _, existing := range c.messages[peerID] {
		if existing.Equivalent(msg) {
			return false
		}
	}
	c.messages[peerID] = append(c.messages[peerID], msg)
	return true
}

// SetOnline flips a peer's presence flag.
func (c *Conversations) SetOnline(userID string, online bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.list {
		if c.list[i].PeerID == userID {
			c.list[i].Online = online
			return
		}
	}
}

// MarkRead flags every message in the thread as read.
func (c *Conversations) MarkRead(peerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := c.messages[peerID]
	for i := range msgs {
		msgs[i].Read = true
	}
}

func (c *Conversations) List() []core.Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]core.Conversation(nil), c.list...)
}

// Messages returns the thread snapshot, oldest to newest.
func (c *Conversations) Messages(peerID string) []core.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]core.Message(nil), c.messages[peerID]...)
}

// UnreadCount counts messages from the peer not yet marked read.
func (c *Conversations) UnreadCount(peerID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, msg := range c.messages[peerID] {
		if !msg.Read && msg.SenderID == peerID {
			count++
		}
	}
	return count
}
