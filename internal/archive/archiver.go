package archive

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"socialite/internal/core"
	"socialite/internal/nats"
	"socialite/pkg/async"
)

const (
	fetchSize   = 1000
	batchSize   = 25
	batchWindow = time.Second
)

// Sink persists archived rows.
type Sink interface {
	InsertMessages(ctx context.Context, messages ...ArchivedMessage) error
	InsertEvents(ctx context.Context, events ...ArchivedEvent) error
}

// Archiver drains the bridged event stream into Postgres: chat messages
// into their own table, everything else raw.
type Archiver struct {
	Logger *slog.Logger
	NATS   *nats.NATS
	Repo   Sink
}

func (a *Archiver) Init(_ context.Context) error {
	a.Logger = a.Logger.With("component", "archive.Archiver")
	return nil
}

func (a *Archiver) Run(ctx context.Context) error {
	ch, err := a.NATS.Consume(ctx, nats.ConsumerArchiver, fetchSize)
	if err != nil {
		return err
	}

	for results := range async.Batched(ctx, ch, batchSize, batchWindow) {
		msgs, err := results.Unpack()
		if err != nil {
			return err
		}

		if err := a.archive(ctx, msgs); err != nil {
			return err
		}
	}

	return nil
}

func (a *Archiver) archive(ctx context.Context, msgs []jetstream.Msg) error {
	var messages []ArchivedMessage
	var events []ArchivedEvent

	for _, msg := range msgs {
		var event core.HubEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			a.Logger.Error("error unmarshalling event", "error", err)
			continue
		}

		if event.Type == core.EventMessageReceived {
			var ev core.MessageReceivedEvent
			if err := json.Unmarshal(event.Payload, &ev); err != nil {
				a.Logger.Error("error unmarshalling message event", "error", err)
				continue
			}
			messages = append(messages, ArchivedMessage{
				ID:       ev.Message.ID,
				PeerID:   ev.PeerID,
				SenderID: ev.Message.SenderID,
				Content:  ev.Message.Content,
				SentAt:   ev.Message.SentAt,
			})
			continue
		}

		events = append(events, ArchivedEvent{
			Kind:    event.Type,
			Payload: msg.Data(),
		})
	}

	if err := a.Repo.InsertMessages(ctx, messages...); err != nil {
		return err
	}
	if err := a.Repo.InsertEvents(ctx, events...); err != nil {
		return err
	}

	// Ack only once the batch is on disk, so a failed insert gets
	// redelivered instead of lost.
	for _, msg := range msgs {
		msg.Ack() //nolint:errcheck
	}
	return nil
}
