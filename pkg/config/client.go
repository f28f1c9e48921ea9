// Package config reads and updates the key-value configuration document
// the core service holds on behalf of its dependent services.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/networkdirection/coresdk/pkg/envelope"
)

// Document is the remote configuration document: an opaque mapping from
// string key to arbitrary JSON value.
type Document = map[string]any

// UpdatedMessage is the message returned alongside a successful Update.
const UpdatedMessage = "Configuration updated successfully."

// Client talks to the core service's configuration endpoint.
type Client struct {
	url    string
	hc     *http.Client
	logger *slog.Logger
}

// New creates a configuration client for the given endpoint URL.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url: url,
		hc: &http.Client{
			Timeout: envelope.DefaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read fetches the current configuration document. Any failure
// (transport, non-200, malformed body) is logged and collapses to an
// empty document; callers cannot distinguish an empty configuration
// from a failed fetch.
func (c *Client) Read(ctx context.Context) Document {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.logger.Error("failed to build config request", "url", c.url, "error", err)
		return Document{}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch global config from core service", "error", err)
		return Document{}
	}

	var doc struct {
		Config Document `json:"config"`
	}
	if err := envelope.DecodeBody(resp, &doc); err != nil {
		c.logger.Error("global configuration could not be loaded from core service", "error", err)
		return Document{}
	}
	if doc.Config == nil {
		return Document{}
	}
	return doc.Config
}

// Update PATCHes the document to the core service. On success it
// touches reloadPath so a dependent worker process notices the change
// and reloads; a failed touch is logged but does not affect the
// returned result. The returned string is the response body text on a
// non-200 status, the error description on a transport failure, and
// UpdatedMessage on success.
func (c *Client) Update(ctx context.Context, doc Document, reloadPath string) (bool, string) {
	body, err := json.Marshal(doc)
	if err != nil {
		return false, err.Error()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.url, bytes.NewReader(body))
	if err != nil {
		return false, err.Error()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error("failed to patch core service", "error", err)
		return false, err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return false, string(text)
	}

	if err := touch(reloadPath); err != nil {
		c.logger.Error("failed to update reload file", "path", reloadPath, "error", err)
	}

	return true, UpdatedMessage
}

// touch creates reloadPath if missing and bumps its modification time.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	now := time.Now()
	return os.Chtimes(path, now, now)
}
