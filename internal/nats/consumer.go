package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"socialite/pkg/async"
)

// Subject builds a subject under the application's stream.
func Subject(parts ...string) string {
	subject := appName
	for _, part := range parts {
		subject += "." + part
	}
	return subject
}

// Consume exposes a durable JetStream consumer as a channel of messages.
func (n *NATS) Consume(ctx context.Context, name string, batchSize int) (<-chan async.Result[jetstream.Msg], error) {
	cons, err := n.JS.Consumer(ctx, appName, name)
	if err != nil {
		return nil, fmt.Errorf("consumer %s: %w", name, err)
	}

	return async.Generator(ctx, func(ctx context.Context, y async.Yielder[jetstream.Msg]) error {
		for {
			select {
			case <-ctx.Done():
				return nil

			default:
				batch, err := cons.Fetch(batchSize)
				if err != nil {
					y(nil, err)
					continue
				}

				for msg := range batch.Messages() {
					y(msg, nil)
				}
			}
		}
	}), nil
}
