// Package plugins manages the collection of named plugin configurations
// held by the core service.
package plugins

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/networkdirection/coresdk/pkg/envelope"
)

// All is the sentinel plugin name that fetches every plugin.
const All = "all"

// nameHeader identifies which plugin a read targets.
const nameHeader = "X-Plugin-Name"

// Record is a single plugin configuration. The "name" field uniquely
// identifies the plugin; the remaining fields are opaque settings.
type Record map[string]any

// Name returns the record's unique name, or "" if unset.
func (r Record) Name() string {
	name, _ := r["name"].(string)
	return name
}

// Client manages plugins through the core service's plugin endpoint.
type Client struct {
	url    string
	hc     *http.Client
	logger *slog.Logger
}

// New creates a plugin client for the given endpoint URL.
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

// Read fetches plugin records by name; the All sentinel (or an empty
// name) fetches every plugin. Any failure is logged and collapses to an
// empty list.
func (c *Client) Read(ctx context.Context, name string) []Record {
	if name == "" {
		name = All
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.logger.Error("failed to build plugin request", "url", c.url, "error", err)
		return []Record{}
	}
	req.Header.Set(nameHeader, name)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch plugin config from core service", "error", err)
		return []Record{}
	}

	var doc struct {
		Plugins []Record `json:"plugins"`
	}
	if err := envelope.DecodeBody(resp, &doc); err != nil {
		c.logger.Error("plugin configuration could not be loaded from core service", "error", err)
		return []Record{}
	}
	if doc.Plugins == nil {
		return []Record{}
	}
	return doc.Plugins
}

// Create registers a new plugin record. Returns true iff the core
// service accepted it.
func (c *Client) Create(ctx context.Context, rec Record) bool {
	return c.mutate(ctx, http.MethodPost, rec)
}

// Update replaces an existing plugin record.
func (c *Client) Update(ctx context.Context, rec Record) bool {
	return c.mutate(ctx, http.MethodPatch, rec)
}

// Delete removes a plugin record.
func (c *Client) Delete(ctx context.Context, rec Record) bool {
	return c.mutate(ctx, http.MethodDelete, rec)
}

// mutate is the single request helper behind Create, Update and
// Delete. An empty record short-circuits to false without a network
// call; otherwise the outcome is true iff the status code is 200.
func (c *Client) mutate(ctx context.Context, method string, rec Record) bool {
	if len(rec) == 0 {
		return false
	}

	body, err := json.Marshal(rec)
	if err != nil {
		c.logger.Error("failed to encode plugin record", "method", method, "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build plugin request", "method", method, "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Error("core service plugin request failed", "method", method, "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}
