package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/archive"
	"socialite/internal/cmd/flags"
	"socialite/internal/metrics"
	"socialite/internal/nats"
)

var archiveCmd = &cli.Command{
	Name:  "archive",
	Usage: "Persist bridged events to postgres",
	Flags: []cli.Flag{
		flags.NATSUrl,
		flags.InitNATS,
		flags.DatabaseURL,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		repo := &archive.Repository{}

		return run(ctx, c,
			pal.Provide(&nats.NATS{}),
			pal.Provide(&archive.DB{}),
			pal.Provide(repo),
			pal.Provide[archive.Sink](repo),
			pal.Provide(&archive.Archiver{}),
			pal.Provide(&metrics.Server{}),
		)
	},
}
