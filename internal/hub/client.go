package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"socialite/internal/core"
	"socialite/pkg/retry"
)

const (
	replyTimeout         = 5 * time.Second
	reconnectDelay       = time.Second
	maxReconnectAttempts = 10
	reconnectErrorRate   = 10
)

var (
	eventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialite_hub_events_total",
		Help: "The total number of events received per hub",
	}, []string{"hub", "event"})

	reconnects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialite_hub_reconnects_total",
		Help: "The total number of reconnect rounds per hub",
	}, []string{"hub"})
)

// Handler consumes one raw event payload.
type Handler func(payload json.RawMessage)

// Client is an explicitly owned handle to one hub connection. There is
// exactly one live socket per handle: reconnecting through the same
// handle closes the previous socket first.
type Client struct {
	name   string
	url    string
	logger *slog.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	gen       int
	closed    bool
	lastToken string

	handlers     map[string][]Handler
	wildcards    []func(core.HubEvent)
	onDisconnect func(error)

	pendingMu sync.Mutex
	pending   map[string]chan core.HubEvent
}

func NewClient(name, wsURL string, logger *slog.Logger) *Client {
	return &Client{
		name:     name,
		url:      wsURL,
		logger:   logger.With("component", "hub.Client", "hub", name),
		handlers: map[string][]Handler{},
		pending:  map[string]chan core.HubEvent{},
	}
}

// On registers a handler for a named server-pushed event. Registration is
// not safe concurrently with Connect; wire handlers first.
func (c *Client) On(event string, handler Handler) {
	c.handlers[event] = append(c.handlers[event], handler)
}

// OnAny registers a handler that sees every event envelope regardless of
// type.
func (c *Client) OnAny(handler func(core.HubEvent)) {
	c.wildcards = append(c.wildcards, handler)
}

// OnDisconnect registers a handler invoked when reconnecting is given up.
func (c *Client) OnDisconnect(handler func(error)) {
	c.onDisconnect = handler
}

// On decodes payloads of a named event into T before dispatching.
func On[T any](c *Client, event string, fn func(T)) {
	c.On(event, func(payload json.RawMessage) {
		var v T
		if err := json.Unmarshal(payload, &v); err != nil {
			c.logger.Error("error unmarshalling event payload", "event", event, "error", err)
			return
		}
		fn(v)
	})
}

// Connect dials the hub authenticated with the given bearer token. If the
// handle already holds a connection it is closed and replaced.
func (c *Client) Connect(ctx context.Context, token string) error {
	u, err := url.Parse(c.url)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("access_token", token)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = conn
	c.gen++
	c.lastToken = token
	gen := c.gen
	c.mu.Unlock()

	go c.readLoop(conn, gen)

	return nil
}

// Close tears the connection down for good; the handle cannot be reused.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Invoke calls a named remote procedure on the open connection. Returns
// ErrNotConnected when no connection is open.
func (c *Client) Invoke(_ context.Context, method string, args any) error {
	return c.write(core.HubEvent{Type: method}, args)
}

// InvokeWithReply calls a remote procedure and decodes the correlated
// reply into result.
func (c *Client) InvokeWithReply(ctx context.Context, method string, args any, result any) error {
	id := uuid.NewString()

	ch := make(chan core.HubEvent, 1)
	c.pendingMu.Lock()
	c.pending[id] = ch
	c.pendingMu.Unlock()

	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
	}()

	if err := c.write(core.HubEvent{Type: method, ID: id}, args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case reply := <-ch:
		return json.Unmarshal(reply.Payload, result)
	}
}

func (c *Client) write(env core.HubEvent, args any) error {
	payload, err := json.Marshal(args)
	if err != nil {
		return err
	}
	env.Payload = payload

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return core.ErrNotConnected
	}
	return c.conn.WriteJSON(env)
}

func (c *Client) readLoop(conn *websocket.Conn, gen int) {
	err := c.read(conn)

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.conn = nil
	token := c.lastToken
	c.mu.Unlock()

	c.logger.Warn("hub connection lost, reconnecting", "error", err)
	reconnects.WithLabelValues(c.name).Inc()

	err = retry.WrapWithRetry(func() error {
		return c.Connect(context.Background(), token)
	}, func(_ error, attempt int) bool {
		if attempt >= maxReconnectAttempts {
			return false
		}
		time.Sleep(reconnectDelay)
		return true
	}, reconnectErrorRate)()

	if err != nil {
		c.logger.Error("hub disconnected", "error", err)
		if c.onDisconnect != nil {
			c.onDisconnect(err)
		}
	}
}

func (c *Client) read(conn *websocket.Conn) error {
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event core.HubEvent
		if err := json.Unmarshal(message, &event); err != nil {
			c.logger.Error("error unmarshalling event", "error", err)
			continue
		}

		c.dispatch(event)
	}
}

func (c *Client) dispatch(event core.HubEvent) {
	if event.ID != "" {
		c.pendingMu.Lock()
		ch, ok := c.pending[event.ID]
		c.pendingMu.Unlock()
		if ok {
			ch <- event
			return
		}
	}

	eventsReceived.WithLabelValues(c.name, event.Type).Inc()

	for _, handler := range c.handlers[event.Type] {
		handler(event.Payload)
	}
	for _, handler := range c.wildcards {
		handler(event)
	}
}
