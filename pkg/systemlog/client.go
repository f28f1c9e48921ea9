// Package systemlog delivers structured log and alert events to the
// logging service's webhook endpoint. Delivery is fire-and-forget: the
// caller learns only whether the event was accepted.
package systemlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/networkdirection/coresdk/pkg/envelope"
)

// timestampLayout matches the wall-clock format the logging service
// stores alongside events.
const timestampLayout = "2006-01-02 15:04:05.000000"

// Defaults are the event fields bound at construction. Each may be
// overridden per call.
type Defaults struct {
	Source      string
	Destination []string
	Group       string
	Category    string
	Alert       string
	Severity    string
}

// Event is the webhook payload.
type Event struct {
	Source      string   `json:"source"`
	Destination []string `json:"destination"`
	Log         Entry    `json:"log"`
}

// Entry is the log body within an Event.
type Entry struct {
	Group     string `json:"group"`
	Category  string `json:"category"`
	Alert     string `json:"alert"`
	Severity  string `json:"severity"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// Client sends events to the logging service.
type Client struct {
	url      string
	defaults Defaults
	hc       *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a logging client. The defaults apply to every event sent
// through this client unless overridden per call.
func New(url string, defaults Defaults, opts ...Option) *Client {
	c := &Client{
		url:      url,
		defaults: defaults,
		hc: &http.Client{
			Timeout: envelope.DefaultTimeout,
		},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log sends message to the logging service, merging any per-call
// overrides over the client defaults and stamping the current time.
// Returns true iff the service accepted the event (HTTP 200 and a
// success envelope). Every failure is logged locally and swallowed.
func (c *Client) Log(ctx context.Context, message string, overrides ...Override) bool {
	fields := c.defaults
	for _, o := range overrides {
		o(&fields)
	}

	event := Event{
		Source:      fields.Source,
		Destination: fields.Destination,
		Log: Entry{
			Group:     fields.Group,
			Category:  fields.Category,
			Alert:     fields.Alert,
			Severity:  fields.Severity,
			Timestamp: c.now().Format(timestampLayout),
			Message:   message,
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("failed to encode log event", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build log request", "url", c.url, "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("failed to send webhook to logging service", "error", err)
		return false
	}

	if err := envelope.Decode(resp, nil); err != nil {
		var protoErr *envelope.ProtocolError
		if errors.As(err, &protoErr) {
			c.logger.Error("failed to send log to logging service",
				"status", protoErr.StatusCode, "response", protoErr.Message)
		} else {
			c.logger.Error("logging service did not return success", "error", err)
		}
		return false
	}

	return true
}
