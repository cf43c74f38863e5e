package hub

import (
	"context"

	"socialite/internal/core"
)

// Call-signaling invocation surface. All of these are fire-and-forget
// relays; negotiation state lives with the peers.

func (c *Client) CallUser(ctx context.Context, calleeID string) error {
	return c.Invoke(ctx, core.MethodCallUser, core.SignalEvent{PeerID: calleeID})
}

func (c *Client) SendOffer(ctx context.Context, callID, peerID, sdp string) error {
	return c.Invoke(ctx, core.MethodSendOffer, core.SignalEvent{CallID: callID, PeerID: peerID, Body: sdp})
}

func (c *Client) SendAnswer(ctx context.Context, callID, peerID, sdp string) error {
	return c.Invoke(ctx, core.MethodSendAnswer, core.SignalEvent{CallID: callID, PeerID: peerID, Body: sdp})
}

func (c *Client) SendICECandidate(ctx context.Context, callID, peerID, candidate string) error {
	return c.Invoke(ctx, core.MethodSendICE, core.SignalEvent{CallID: callID, PeerID: peerID, Body: candidate})
}

func (c *Client) EndCall(ctx context.Context, callID string) error {
	return c.Invoke(ctx, core.MethodEndCall, core.CallEndedEvent{CallID: callID})
}
