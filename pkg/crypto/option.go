package crypto

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithTimeout bounds crypto requests, which are otherwise unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = d
	}
}

// WithHTTPClient provides a fully custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithLogger sets the structured logger used to record failures.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}
