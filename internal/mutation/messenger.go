package mutation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"socialite/internal/core"
	"socialite/internal/hub"
	"socialite/internal/session"
	"socialite/internal/store"
)

// Messenger sends chat messages over the hub. A message gets a
// client-generated id at send time; the thread only shows it once the
// server echoes it back, and the echo is de-duplicated by that id.
type Messenger struct {
	Logger        *slog.Logger
	Session       *session.Session
	Hubs          *hub.Hubs
	Conversations *store.Conversations
}

func (m *Messenger) Init(_ context.Context) error {
	m.Logger = m.Logger.With("component", "mutation.Messenger")
	return nil
}

// Send invokes the chat hub's send procedure and returns the message as
// sent. When the hub is not connected the send is dropped and logged; no
// queuing, no retry.
func (m *Messenger) Send(ctx context.Context, peerID, content string) (core.Message, error) {
	msg := core.Message{
		ID:       uuid.NewString(),
		SenderID: m.Session.UserID(),
		Content:  content,
		SentAt:   time.Now().UTC(),
	}

	err := m.Hubs.Chat.SendMessage(ctx, peerID, msg)
	if err != nil {
		if errors.Is(err, core.ErrNotConnected) {
			m.Logger.Warn("dropping message, hub not connected", "peer", peerID)
		}
		mutations.WithLabelValues("send_message", "failed").Inc()
		return core.Message{}, err
	}

	mutations.WithLabelValues("send_message", "sent").Inc()
	return msg, nil
}
