package config

import (
	"fmt"
	"net/url"
	"path"
)

type Config struct {
	ServerURL   string `flag:"server-url"`
	Token       string `flag:"token"`
	NATSURL     string `flag:"nats-url"`
	NATSInit    bool   `flag:"nats-init"`
	DatabaseURL string `flag:"database-url"`
	MetricsAddr string `flag:"metrics-addr"`
	LogLevel    string `flag:"log-level"`
}

// HubURL returns the websocket endpoint for the named hub, with the
// server's http(s) scheme mapped to ws(s).
func (c *Config) HubURL(hub string) string {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Sprintf("%s/hubs/%s", c.ServerURL, hub)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}
	u.Path = path.Join(u.Path, "hubs", hub)

	return u.String()
}
