package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/bridge"
	"socialite/internal/cmd/flags"
	"socialite/internal/hub"
	"socialite/internal/metrics"
	"socialite/internal/nats"
	"socialite/internal/session"
	"socialite/internal/state"
)

var bridgeCmd = &cli.Command{
	Name:  "bridge",
	Usage: "Forward hub events into JetStream",
	Flags: []cli.Flag{
		flags.ServerURL,
		flags.Token,
		flags.NATSUrl,
		flags.InitNATS,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&nats.NATS{}),
			pal.Provide(&state.Store{}),
			pal.Provide(&session.Session{}),
			pal.Provide(&hub.Hubs{}),
			pal.Provide(&bridge.Bridge{}),
			pal.Provide(&metrics.Server{}),
		)
	},
}
