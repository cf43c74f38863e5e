package core

import "encoding/json"

// Hub names. One persistent connection exists per hub per process.
const (
	HubChat  = "chat"
	HubCalls = "calls"
)

// Server-pushed event names.
const (
	EventMessageReceived  = "message_received"
	EventUserConnected    = "user_connected"
	EventUserDisconnected = "user_disconnected"
	EventIncomingCall     = "incoming_call"
	EventCallOffer        = "offer"
	EventCallAnswer       = "answer"
	EventICECandidate     = "ice_candidate"
	EventCallEnded        = "call_ended"
)

// Client-invoked method names.
const (
	MethodSendMessage = "send_message"
	MethodCheckOnline = "check_online"
	MethodCallUser    = "call_user"
	MethodSendOffer   = "send_offer"
	MethodSendAnswer  = "send_answer"
	MethodSendICE     = "send_ice_candidate"
	MethodEndCall     = "end_call"
)

// HubEvent is the raw envelope carried over a hub connection in both
// directions. ID correlates an invocation with its reply.
type HubEvent struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MessageReceivedEvent struct {
	PeerID  string  `json:"peerId"`
	Message Message `json:"message"`
}

type PresenceEvent struct {
	UserID string `json:"userId"`
}

type SendMessageArgs struct {
	PeerID  string  `json:"peerId"`
	Message Message `json:"message"`
}

type CheckOnlineArgs struct {
	UserIDs []string `json:"userIds"`
}

type CheckOnlineReply struct {
	Online []string `json:"online"`
}

type IncomingCallEvent struct {
	CallID     string `json:"callId"`
	CallerID   string `json:"callerId"`
	CallerName string `json:"callerName"`
}

// SignalEvent carries SDP offers/answers and ICE candidates between call
// participants. Body is opaque to the client core.
type SignalEvent struct {
	CallID string `json:"callId"`
	PeerID string `json:"peerId"`
	Body   string `json:"body"`
}

type CallEndedEvent struct {
	CallID string `json:"callId"`
	Reason string `json:"reason,omitempty"`
}
