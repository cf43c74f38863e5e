package state

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"socialite/internal/nats"
)

const (
	keyToken = "token"
	keyTheme = "theme"
)

// Store is the client-persisted state: the bearer token and the UI theme
// preference survive restarts in the KV bucket, the way a browser client
// keeps them in local storage.
type Store struct {
	Logger *slog.Logger
	NATS   *nats.NATS
}

func (s *Store) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "state.Store")
	return nil
}

func (s *Store) Token(ctx context.Context) string {
	return s.get(ctx, keyToken)
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.put(ctx, keyToken, token)
}

// ClearToken signs the persisted session out.
func (s *Store) ClearToken(ctx context.Context) error {
	err := s.NATS.KV.Delete(ctx, keyToken)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (s *Store) Theme(ctx context.Context) string {
	return s.get(ctx, keyTheme)
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.put(ctx, keyTheme, theme)
}

// Cursor state for the bridge: the timestamp of the last event published.
func (s *Store) LastEventAt(ctx context.Context) time.Time {
	raw := s.get(ctx, "last_event_at")
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (s *Store) SetLastEventAt(ctx context.Context, t time.Time) error {
	return s.put(ctx, "last_event_at", t.Format(time.RFC3339Nano))
}

func (s *Store) get(ctx context.Context, key string) string {
	entry, err := s.NATS.KV.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, jetstream.ErrKeyNotFound) {
			s.Logger.Warn("state read failed", "key", key, "error", err)
		}
		return ""
	}
	return string(entry.Value())
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.NATS.KV.Put(ctx, key, []byte(value))
	return err
}
