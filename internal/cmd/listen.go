package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/pal/inspect"

	"socialite/internal/api"
	"socialite/internal/cmd/flags"
	"socialite/internal/core"
	"socialite/internal/hub"
	"socialite/internal/metrics"
	"socialite/internal/mutation"
	"socialite/internal/nats"
	"socialite/internal/session"
	"socialite/internal/state"
	"socialite/internal/store"
	"socialite/pkg/async"
)

const presenceInterval = 30 * time.Second

var listenCmd = &cli.Command{
	Name:  "listen",
	Usage: "Connect to the hubs, keep the entity stores live, serve metrics",
	Flags: []cli.Flag{
		flags.ServerURL,
		flags.Token,
		flags.NATSUrl,
		flags.InitNATS,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		client := &api.Client{}

		services := append([]pal.ServiceDef{inspect.Provide()},
			pal.Provide(client),
			pal.Provide[core.AuthAPI](client),
			pal.Provide[core.ProfileAPI](client),
			pal.Provide[core.FeedAPI](client),
			pal.Provide[core.EngagementAPI](client),
			pal.Provide[core.NotificationAPI](client),
			pal.Provide[core.StoryAPI](client),
			pal.Provide[core.MessagingAPI](client),
			pal.Provide[core.ComposeAPI](client),
			pal.Provide[core.GraphAPI](client),
			pal.Provide[core.AdminAPI](client),
			pal.Provide(&nats.NATS{}),
			pal.Provide(&state.Store{}),
			pal.Provide(&session.Session{}),
			pal.Provide(&hub.Hubs{}),
			pal.Provide(&store.Profile{}),
			pal.Provide(&store.Feed{}),
			pal.Provide(&store.Conversations{}),
			pal.Provide(&store.Notifications{}),
			pal.Provide(&store.Stories{}),
			pal.Provide(&mutation.Toggles{}),
			pal.Provide(&mutation.Messenger{}),
			pal.Provide(&metrics.Server{}),
			pal.Provide(&listener{}),
		)

		return run(ctx, c, services...)
	},
}

// listener wires hub events into the stores and runs the initial
// bootstrap fetches.
type listener struct {
	Logger  *slog.Logger
	Session *session.Session
	State   *state.Store
	Hubs    *hub.Hubs

	Profile       *store.Profile
	Feed          *store.Feed
	Conversations *store.Conversations
	Notifications *store.Notifications
	Stories       *store.Stories
}

func (l *listener) Init(_ context.Context) error {
	l.Logger = l.Logger.With("component", "listener")

	hub.On(l.Hubs.Chat, core.EventMessageReceived, func(ev core.MessageReceivedEvent) {
		l.Conversations.ApplyIncoming(ev)
	})
	hub.On(l.Hubs.Chat, core.EventUserConnected, func(ev core.PresenceEvent) {
		l.Conversations.SetOnline(ev.UserID, true)
	})
	hub.On(l.Hubs.Chat, core.EventUserDisconnected, func(ev core.PresenceEvent) {
		l.Conversations.SetOnline(ev.UserID, false)
	})

	hub.On(l.Hubs.Calls, core.EventIncomingCall, func(ev core.IncomingCallEvent) {
		l.Logger.Info("incoming call", "call", ev.CallID, "caller", ev.CallerName)
	})
	hub.On(l.Hubs.Calls, core.EventCallEnded, func(ev core.CallEndedEvent) {
		l.Logger.Info("call ended", "call", ev.CallID, "reason", ev.Reason)
	})

	l.Hubs.Chat.OnDisconnect(func(err error) {
		l.Logger.Error("chat hub gave up reconnecting", "error", err)
	})

	return nil
}

func (l *listener) Run(ctx context.Context) error {
	if l.Session.Token() == "" {
		if token := l.State.Token(ctx); token != "" {
			l.Session.SetToken(token)
		}
	}

	if !l.Session.CheckAuth() {
		return core.ErrNotAuthenticated
	}

	if err := l.State.SetToken(ctx, l.Session.Token()); err != nil {
		l.Logger.Warn("failed to persist token", "error", err)
	}

	if err := l.Hubs.Connect(ctx); err != nil {
		return err
	}

	// Bootstrap fetches resolve independently; a failure leaves that
	// store stale and the rest unaffected.
	for name, refresh := range map[string]func(context.Context) error{
		"profile":       l.Profile.Refresh,
		"feed":          l.Feed.Refresh,
		"conversations": l.Conversations.Refresh,
		"notifications": l.Notifications.Refresh,
		"stories":       l.Stories.Refresh,
	} {
		go func() {
			if err := refresh(ctx); err != nil {
				l.Logger.Warn("bootstrap fetch failed", "store", name, "error", err)
			}
		}()
	}

	presence := async.Job(func(ctx context.Context) (any, error) {
		ticker := time.NewTicker(presenceInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil, nil
			case <-ticker.C:
				l.refreshPresence(ctx)
			}
		}
	})

	<-ctx.Done()
	_, err := presence.StopWait()
	return err
}

// refreshPresence reconciles the online flags of every known peer against
// a check_online round-trip. The push events keep presence fresh between
// polls; the poll catches flips lost to a reconnect.
func (l *listener) refreshPresence(ctx context.Context) {
	peers := lo.Map(l.Conversations.List(), func(conv core.Conversation, _ int) string {
		return conv.PeerID
	})
	if len(peers) == 0 {
		return
	}

	online := l.Hubs.Chat.CheckOnline(ctx, peers)
	onlineSet := lo.SliceToMap(online, func(id string) (string, struct{}) { return id, struct{}{} })

	for _, peer := range peers {
		_, ok := onlineSet[peer]
		l.Conversations.SetOnline(peer, ok)
	}
}
