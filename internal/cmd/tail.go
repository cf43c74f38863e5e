package cmd

import (
	"context"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialite/internal/cmd/flags"
	"socialite/internal/core"
	"socialite/internal/hub"
	"socialite/internal/session"
)

var tailCmd = &cli.Command{
	Name:  "tail",
	Usage: "Pretty-print hub events as they arrive",
	Flags: []cli.Flag{
		flags.ServerURL,
		flags.Token,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&session.Session{}),
			pal.Provide(&hub.Hubs{}),
			pal.Provide(&tailer{}),
		)
	},
}

type tailer struct {
	Hubs *hub.Hubs
}

func (t *tailer) Init(_ context.Context) error {
	t.Hubs.Chat.OnAny(func(event core.HubEvent) {
		pp.Println(event)
	})
	t.Hubs.Calls.OnAny(func(event core.HubEvent) {
		pp.Println(event)
	})
	return nil
}

func (t *tailer) Run(ctx context.Context) error {
	if err := t.Hubs.Connect(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
