package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	libnats "github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	"socialite/internal/core"
	"socialite/internal/hub"
	"socialite/internal/nats"
	"socialite/internal/state"
)

var eventsForwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialite_events_forwarded_total",
	Help: "The total number of hub events forwarded to JetStream",
}, []string{"event"})

// Bridge republishes chat-hub events to JetStream so local consumers (the
// archiver, bots) can read them without their own hub connection.
type Bridge struct {
	Logger *slog.Logger
	Hubs   *hub.Hubs
	NATS   *nats.NATS
	State  *state.Store

	mu     sync.Mutex
	closed bool
	ch     chan pips.D[core.HubEvent]
}

func (b *Bridge) Init(_ context.Context) error {
	b.Logger = b.Logger.With("component", "bridge.Bridge")
	b.ch = make(chan pips.D[core.HubEvent], 256)

	b.Hubs.Chat.OnAny(b.enqueue)

	return nil
}

// enqueue feeds one hub event into the pipeline. The hub's read loop
// outlives the bridge during shutdown, so events arriving after Shutdown
// are dropped instead of hitting the closed channel.
func (b *Bridge) enqueue(event core.HubEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	select {
	case b.ch <- pips.NewD(event):
	default:
		b.Logger.Warn("bridge queue full, dropping event", "event", event.Type)
	}
}

func (b *Bridge) Shutdown(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.ch)
	return nil
}

func (b *Bridge) Run(ctx context.Context) error {
	if last := b.State.LastEventAt(ctx); !last.IsZero() {
		b.Logger.Info("resuming bridge", "last_event_at", last)
	}

	if err := b.Hubs.Connect(ctx); err != nil {
		return err
	}

	return pips.New[core.HubEvent, any]().
		Then(apply.Each(countEvent)).
		Then(
			apply.Map(func(ctx context.Context, event core.HubEvent) (any, error) {
				payload, err := json.Marshal(event)
				if err != nil {
					return nil, err
				}

				msg := &libnats.Msg{
					Subject: nats.Subject("event", event.Type),
					Data:    payload,
				}
				if id := messageID(event); id != "" {
					msg.Header = libnats.Header{libnats.MsgIdHdr: []string{id}}
				}

				if _, err := b.NATS.JS.PublishMsg(ctx, msg); err != nil {
					return nil, err
				}

				return nil, b.State.SetLastEventAt(ctx, time.Now().UTC())
			}),
		).
		Run(ctx, b.ch).
		Wait(ctx)
}

func countEvent(_ context.Context, event core.HubEvent) error {
	eventsForwarded.WithLabelValues(event.Type).Inc()
	return nil
}

// messageID derives a JetStream dedupe id. Message events carry a
// client-generated message id; other event kinds have no natural identity
// and are published without one.
func messageID(event core.HubEvent) string {
	if event.Type != core.EventMessageReceived {
		return ""
	}

	var ev core.MessageReceivedEvent
	if err := json.Unmarshal(event.Payload, &ev); err != nil {
		return ""
	}
	return ev.Message.ID
}
