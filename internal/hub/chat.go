package hub

import (
	"context"

	"socialite/internal/core"
)

// SendMessage invokes the chat hub's send procedure. The sender does not
// append locally; the server echoes the message back through
// message_received and the store reconciles by id.
func (c *Client) SendMessage(ctx context.Context, peerID string, msg core.Message) error {
	return c.Invoke(ctx, core.MethodSendMessage, core.SendMessageArgs{PeerID: peerID, Message: msg})
}

// CheckOnline asks which of the given users are currently connected.
// Returns an empty result on any failure.
func (c *Client) CheckOnline(ctx context.Context, userIDs []string) []string {
	var reply core.CheckOnlineReply

	err := c.InvokeWithReply(ctx, core.MethodCheckOnline, core.CheckOnlineArgs{UserIDs: userIDs}, &reply)
	if err != nil {
		c.logger.Warn("presence query failed", "error", err)
		return nil
	}

	return reply.Online
}
