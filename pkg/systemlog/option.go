package systemlog

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
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

// WithLogger sets the structured logger used for locally recovered
// delivery failures. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// Override adjusts a single event's fields before it is sent.
type Override func(*Defaults)

// Source overrides the event source.
func Source(s string) Override {
	return func(d *Defaults) {
		d.Source = s
	}
}

// Destination overrides the event destinations.
func Destination(dest []string) Override {
	return func(d *Defaults) {
		d.Destination = dest
	}
}

// Group overrides the event group.
func Group(g string) Override {
	return func(d *Defaults) {
		d.Group = g
	}
}

// Category overrides the event category.
func Category(c string) Override {
	return func(d *Defaults) {
		d.Category = c
	}
}

// Alert overrides the event alert type.
func Alert(a string) Override {
	return func(d *Defaults) {
		d.Alert = a
	}
}

// Severity overrides the event severity.
func Severity(s string) Override {
	return func(d *Defaults) {
		d.Severity = s
	}
}
