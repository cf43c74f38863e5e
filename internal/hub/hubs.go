package hub

import (
	"context"
	"errors"
	"log/slog"

	"socialite/internal/config"
	"socialite/internal/core"
	"socialite/internal/session"
)

// Hubs owns the chat and call-signaling handles, one per hub per process.
type Hubs struct {
	Logger  *slog.Logger
	Config  *config.Config
	Session *session.Session

	Chat  *Client
	Calls *Client
}

func (h *Hubs) Init(_ context.Context) error {
	h.Logger = h.Logger.With("component", "hub.Hubs")

	h.Chat = NewClient(core.HubChat, h.Config.HubURL(core.HubChat), h.Logger)
	h.Calls = NewClient(core.HubCalls, h.Config.HubURL(core.HubCalls), h.Logger)

	return nil
}

// Connect dials both hubs with the session's bearer token. Handlers must
// already be registered.
func (h *Hubs) Connect(ctx context.Context) error {
	token := h.Session.Token()
	if token == "" {
		return core.ErrNotAuthenticated
	}

	if err := h.Chat.Connect(ctx, token); err != nil {
		return err
	}
	return h.Calls.Connect(ctx, token)
}

func (h *Hubs) Shutdown(_ context.Context) error {
	return errors.Join(h.Chat.Close(), h.Calls.Close())
}
