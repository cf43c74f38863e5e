package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"

	"socialite/internal/config"
	"socialite/internal/core"
)

var apiLatency = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "socialite_api_request_latency",
		Help:    "Histogram of backend API request latency in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	},
	[]string{"method", "path", "status_code"},
)

// Client is the authenticated REST client for the backend. It implements
// the core API interfaces; every mutating call the optimistic layer makes
// lands here.
type Client struct {
	Config *config.Config
	Tokens core.TokenSource

	client *resty.Client
}

// New builds a standalone client. Used by tests and embedders that do not
// run the service container.
func New(baseURL string, tokens core.TokenSource) *Client {
	c := &Client{Tokens: tokens}
	c.client = newResty(baseURL, tokens)
	return c
}

func (c *Client) Init(_ context.Context) error {
	c.client = newResty(c.Config.ServerURL, c.Tokens)
	return nil
}

func (c *Client) Shutdown(_ context.Context) error {
	return c.client.Close()
}

func newResty(baseURL string, tokens core.TokenSource) *resty.Client {
	client := resty.NewWithTransportSettings(&resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	})

	client.SetBaseURL(baseURL)

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		if tokens != nil {
			if token := tokens.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
		}
		return nil
	})

	client.AddResponseMiddleware(metricMiddleware)

	return client
}

func metricMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	apiLatency.WithLabelValues(
		response.Request.Method,
		reqURL.Path,
		fmt.Sprintf("%d", response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.client.R().WithContext(ctx)
}

// check turns transport failures and non-2xx responses into errors,
// leaving 2xx untouched.
func (c *Client) check(res *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !res.IsError() {
		return nil
	}
	return decodeAPIError(res)
}
